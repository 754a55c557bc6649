package matchinghandler

import (
	"encoding/json"

	"github.com/pkg/errors"

	"anken-match-backend/config"
	ankenapimodels "anken-match-backend/models/api/anken"
	matchingapimodels "anken-match-backend/models/api/matching"
)

// 作業場所と勤務形態を結合する区切り文字
const locationStyleSeparator = "、"

// BuildFromForm は手入力フォームからペイロードを組み立てる。
// 勤務地および勤務形態は結合済みの1フィールドとして受け取る。
func BuildFromForm(req matchingapimodels.FormRequest) (matchingapimodels.MatchingPayload, error) {
	data := matchingapimodels.AnkenData{
		AnkenName:         req.AnkenName,
		RequiredSkill:     req.RequiredSkill,
		UnitPrice:         req.UnitPrice,
		LocationWorkStyle: req.LocationWorkStyle,
	}
	return buildPayload(data)
}

// BuildFromAnken は案件レコードからペイロードを組み立てる。
// 案件名が無い場合は件名へフォールバックし、勤務地および勤務形態は
// 作業場所と勤務形態を「、」で結合する。欠落フィールドは空文字。
func BuildFromAnken(rec ankenapimodels.AnkenRecord) (matchingapimodels.MatchingPayload, error) {
	data := matchingapimodels.AnkenData{
		AnkenName:         rec.Title(),
		RequiredSkill:     strValue(rec.RequiredSkill),
		UnitPrice:         strValue(rec.UnitPrice),
		LocationWorkStyle: joinLocationStyle(rec.WorkLocation, rec.WorkStyle),
	}
	return buildPayload(data)
}

// buildPayload はAnkenDataをJSON文字列化して正規エンベロープに埋め込む。
// 二重エンコードはバックエンド契約上の仕様（ankenは必ず文字列フィールド）。
func buildPayload(data matchingapimodels.AnkenData) (matchingapimodels.MatchingPayload, error) {
	ankenStr, err := json.Marshal(data)
	if err != nil {
		return matchingapimodels.MatchingPayload{}, errors.Wrap(err, "案件データのシリアライズに失敗しました")
	}
	return matchingapimodels.MatchingPayload{
		Inputs: matchingapimodels.PayloadInputs{
			Action: matchingapimodels.ActionMatchingYoin,
			Anken:  string(ankenStr),
			Text:   matchingapimodels.DummyText,
		},
		ResponseMode: config.Conf.Matching.ResponseMode,
		User:         config.Conf.Matching.User,
	}, nil
}

func joinLocationStyle(location, style *string) string {
	loc := strValue(location)
	st := strValue(style)
	if loc == "" {
		return st
	}
	if st == "" {
		return loc
	}
	return loc + locationStyleSeparator + st
}

func strValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
