package viewstatehandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	ankenapimodels "anken-match-backend/models/api/anken"
	matchingapimodels "anken-match-backend/models/api/matching"
)

func TestMatchViewTransitions(t *testing.T) {
	Init()

	t.Run(`initial state check`, func(t *testing.T) {
		state := Instance.Get("s1")
		require.Equal(t, MatchViewForm, state.MatchView)
		require.Equal(t, AnkenViewList, state.AnkenView)
		require.Nil(t, state.Results)
		require.Nil(t, state.SelectedAnken)
	})

	t.Run(`form to results check`, func(t *testing.T) {
		result := matchingapimodels.MatchingResult{
			Candidates:         []matchingapimodels.Candidate{{YoinID: "E1"}},
			RecommendedActions: []string{"面談を設定する"},
			ComparisonChart:    []matchingapimodels.ComparisonChartRow{},
		}
		Instance.SetResults("s1", result)
		state := Instance.Get("s1")
		require.Equal(t, MatchViewResults, state.MatchView)
		require.NotNil(t, state.Results)
		require.Len(t, state.Results.Candidates, 1)
	})

	t.Run(`results to form clears all check`, func(t *testing.T) {
		Instance.ResetToForm("s1")
		state := Instance.Get("s1")
		require.Equal(t, MatchViewForm, state.MatchView)
		require.Nil(t, state.Results)
	})

	t.Run(`last completed request wins check`, func(t *testing.T) {
		first := matchingapimodels.MatchingResult{Candidates: []matchingapimodels.Candidate{{YoinID: "E1"}}}
		second := matchingapimodels.MatchingResult{Candidates: []matchingapimodels.Candidate{{YoinID: "E2"}}}
		Instance.SetResults("s2", first)
		Instance.SetResults("s2", second)
		state := Instance.Get("s2")
		require.Equal(t, "E2", state.Results.Candidates[0].YoinID)
	})
}

func TestAnkenViewTransitions(t *testing.T) {
	Init()

	t.Run(`open and close mail modal check`, func(t *testing.T) {
		id := "A001"
		rec := ankenapimodels.AnkenRecord{ID: &id}
		Instance.OpenMail("s1", rec)
		state := Instance.Get("s1")
		require.Equal(t, AnkenViewMailModal, state.AnkenView)
		require.Equal(t, "A001", *state.SelectedAnken.ID)

		Instance.CloseMail("s1")
		state = Instance.Get("s1")
		require.Equal(t, AnkenViewList, state.AnkenView)
		require.Nil(t, state.SelectedAnken)
	})

	t.Run(`machines are independent check`, func(t *testing.T) {
		id := "A002"
		Instance.SetResults("s3", matchingapimodels.MatchingResult{})
		Instance.OpenMail("s3", ankenapimodels.AnkenRecord{ID: &id})

		state := Instance.Get("s3")
		require.Equal(t, MatchViewResults, state.MatchView)
		require.Equal(t, AnkenViewMailModal, state.AnkenView)

		// 片方の遷移がもう片方へ影響しない
		Instance.CloseMail("s3")
		state = Instance.Get("s3")
		require.Equal(t, MatchViewResults, state.MatchView)
		require.Equal(t, AnkenViewList, state.AnkenView)
	})

	t.Run(`sessions are isolated check`, func(t *testing.T) {
		state := Instance.Get("fresh-session")
		require.Equal(t, MatchViewForm, state.MatchView)
		require.Nil(t, state.Results)
	})
}
