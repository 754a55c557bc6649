package matchingapimodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run(`string score stays string check`, func(t *testing.T) {
		s := Score{}
		require.Nil(t, json.Unmarshal([]byte(`"87"`), &s))
		require.Equal(t, "87", s.String())
		require.Equal(t, 87, s.Int())

		out, err := json.Marshal(s)
		require.Nil(t, err)
		require.Equal(t, `"87"`, string(out))
	})

	t.Run(`numeric score stays numeric check`, func(t *testing.T) {
		s := Score{}
		require.Nil(t, json.Unmarshal([]byte(`92`), &s))
		require.Equal(t, 92, s.Int())

		out, err := json.Marshal(s)
		require.Nil(t, err)
		require.Equal(t, `92`, string(out))
	})

	t.Run(`non numeric string check`, func(t *testing.T) {
		s := Score{}
		require.Nil(t, json.Unmarshal([]byte(`"高"`), &s))
		require.Equal(t, 0, s.Int())

		out, err := json.Marshal(s)
		require.Nil(t, err)
		require.Equal(t, `"高"`, string(out))
	})
}
