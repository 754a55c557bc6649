package matchinghandler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"anken-match-backend/config"
	ankenapimodels "anken-match-backend/models/api/anken"
	matchingapimodels "anken-match-backend/models/api/matching"
)

func initTestConfig() {
	conf := new(config.Configuration)
	conf.Matching.User = "mini_match_user"
	conf.Matching.ResponseMode = "blocking"
	config.Conf = conf
}

func strPtr(v string) *string {
	return &v
}

func TestBuildPayload(t *testing.T) {
	initTestConfig()

	t.Run(`form payload check`, func(t *testing.T) {
		req := matchingapimodels.FormRequest{
			AnkenName:         "在庫管理システム開発",
			RequiredSkill:     "Java,Spring Boot,AWS EC2,RDS,PostgreSQL",
			UnitPrice:         "70-80万",
			LocationWorkStyle: "品川駅、リモート併用",
		}
		payload, err := BuildFromForm(req)
		require.Nil(t, err)
		require.Equal(t, "matching_yoin", payload.Inputs.Action)
		require.Equal(t, "dummy", payload.Inputs.Text)
		require.Equal(t, "blocking", payload.ResponseMode)
		require.Equal(t, "mini_match_user", payload.User)

		// anken はネストオブジェクトではなくJSON文字列でなければならない
		data := matchingapimodels.AnkenData{}
		err = json.Unmarshal([]byte(payload.Inputs.Anken), &data)
		require.Nil(t, err)
		require.Equal(t, "在庫管理システム開発", data.AnkenName)
		require.Equal(t, "Java,Spring Boot,AWS EC2,RDS,PostgreSQL", data.RequiredSkill)
		require.Equal(t, "70-80万", data.UnitPrice)
		require.Equal(t, "品川駅、リモート併用", data.LocationWorkStyle)
	})

	t.Run(`anken string has exactly four fields check`, func(t *testing.T) {
		payload, err := BuildFromForm(matchingapimodels.FormRequest{})
		require.Nil(t, err)
		fields := map[string]interface{}{}
		err = json.Unmarshal([]byte(payload.Inputs.Anken), &fields)
		require.Nil(t, err)
		require.Len(t, fields, 4)
		// 欠落フィールドは空文字で必ず出力される
		require.Equal(t, "", fields["案件名"])
		require.Equal(t, "", fields["必須スキル"])
		require.Equal(t, "", fields["単価"])
		require.Equal(t, "", fields["勤務地および勤務形態"])
	})

	t.Run(`anken record payload check`, func(t *testing.T) {
		rec := ankenapimodels.AnkenRecord{
			AnkenName:     strPtr("基幹システム刷新"),
			RequiredSkill: strPtr("Go,PostgreSQL"),
			UnitPrice:     strPtr("80万"),
			WorkLocation:  strPtr("溜池山王駅"),
			WorkStyle:     strPtr("リモート併用"),
		}
		payload, err := BuildFromAnken(rec)
		require.Nil(t, err)
		data := matchingapimodels.AnkenData{}
		err = json.Unmarshal([]byte(payload.Inputs.Anken), &data)
		require.Nil(t, err)
		require.Equal(t, "基幹システム刷新", data.AnkenName)
		require.Equal(t, "溜池山王駅、リモート併用", data.LocationWorkStyle)
	})

	t.Run(`title fallback to subject check`, func(t *testing.T) {
		rec := ankenapimodels.AnkenRecord{
			Subject: strPtr("【案件】インフラ保守"),
		}
		payload, err := BuildFromAnken(rec)
		require.Nil(t, err)
		data := matchingapimodels.AnkenData{}
		err = json.Unmarshal([]byte(payload.Inputs.Anken), &data)
		require.Nil(t, err)
		require.Equal(t, "【案件】インフラ保守", data.AnkenName)
	})

	t.Run(`missing fields default to empty check`, func(t *testing.T) {
		payload, err := BuildFromAnken(ankenapimodels.AnkenRecord{})
		require.Nil(t, err)
		data := matchingapimodels.AnkenData{}
		err = json.Unmarshal([]byte(payload.Inputs.Anken), &data)
		require.Nil(t, err)
		require.Equal(t, "", data.AnkenName)
		require.Equal(t, "", data.RequiredSkill)
		require.Equal(t, "", data.UnitPrice)
		require.Equal(t, "", data.LocationWorkStyle)
	})

	t.Run(`location only join check`, func(t *testing.T) {
		rec := ankenapimodels.AnkenRecord{
			WorkLocation: strPtr("新宿"),
		}
		payload, err := BuildFromAnken(rec)
		require.Nil(t, err)
		data := matchingapimodels.AnkenData{}
		err = json.Unmarshal([]byte(payload.Inputs.Anken), &data)
		require.Nil(t, err)
		require.Equal(t, "新宿", data.LocationWorkStyle)
	})
}
