package matchinghandler

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	ankenhandler "anken-match-backend/lib/anken"
	matchingclient "anken-match-backend/lib/matching/client"
	viewstatehandler "anken-match-backend/lib/view-state"
	matchingapimodels "anken-match-backend/models/api/matching"
)

// マッチングAPIへ渡す固定クエリ
const backendQuery = "要員マッチング"

type Provider interface {
	// Relay はSPA向けの生中継。userInput（ペイロードのJSON文字列）を
	// バックエンド形式へ変換して転送し、成功時は生JSONを無加工で返す。
	Relay(ctx context.Context, userInput string) (raw []byte, err error)

	// RunFromForm はフォーム入力からの全パイプライン実行
	// （組み立て → 中継 → 正規化 → 表示状態の更新）
	RunFromForm(ctx context.Context, sessionID string, req matchingapimodels.FormRequest) (*matchingapimodels.MatchingResult, error)

	// RunFromAnken は案件レコードからの全パイプライン実行
	RunFromAnken(ctx context.Context, sessionID, ankenID string) (*matchingapimodels.MatchingResult, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) Relay(ctx context.Context, userInput string) ([]byte, error) {
	req, err := toBackendRequest(userInput)
	if err != nil {
		log.WithError(err).Error("userInputの解析に失敗")
		return nil, matchingclient.ErrUpstream
	}
	return matchingclient.Instance.Relay(ctx, req)
}

// toBackendRequest はuserInputを再解析し、バックエンドのスキーマへ変換する。
// inputs.anken を抽出して {query, anken} へ詰め替える。anken が無い場合は
// ペイロード全体を文字列のまま渡す。
func toBackendRequest(userInput string) (matchingapimodels.BackendRequest, error) {
	payload := matchingapimodels.MatchingPayload{}
	if err := json.Unmarshal([]byte(userInput), &payload); err != nil {
		return matchingapimodels.BackendRequest{}, err
	}
	anken := payload.Inputs.Anken
	if anken == "" {
		// ankenが無い変則ペイロードは全体をそのまま渡す
		anken = userInput
	}
	return matchingapimodels.BackendRequest{
		Query: backendQuery,
		Anken: anken,
	}, nil
}

func (i impl) RunFromForm(ctx context.Context, sessionID string, req matchingapimodels.FormRequest) (*matchingapimodels.MatchingResult, error) {
	payload, err := BuildFromForm(req)
	if err != nil {
		return nil, err
	}
	return i.run(ctx, sessionID, payload)
}

func (i impl) RunFromAnken(ctx context.Context, sessionID, ankenID string) (*matchingapimodels.MatchingResult, error) {
	rec, err := ankenhandler.Instance.GetByID(ctx, ankenID)
	if err != nil {
		return nil, err
	}
	payload, err := BuildFromAnken(*rec)
	if err != nil {
		return nil, err
	}
	return i.run(ctx, sessionID, payload)
}

// run はペイロードを中継し、正規化に成功した場合のみ表示状態を
// Results へ遷移させる。失敗時は状態を変更しない。
func (i impl) run(ctx context.Context, sessionID string, payload matchingapimodels.MatchingPayload) (*matchingapimodels.MatchingResult, error) {
	userInput, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	raw, err := i.Relay(ctx, string(userInput))
	if err != nil {
		return nil, err
	}
	result, err := Normalize(raw)
	if err != nil {
		log.
			WithField("session_id", sessionID).
			WithField("response_body", string(raw)).
			WithError(err).
			Error("マッチング結果の正規化に失敗")
		return nil, err
	}
	viewstatehandler.Instance.SetResults(sessionID, *result)
	return result, nil
}
