package viewstatehandler

import (
	"sync"

	ankenapimodels "anken-match-backend/models/api/anken"
	matchingapimodels "anken-match-backend/models/api/matching"
)

// マッチング領域のビュー状態
const (
	MatchViewForm    = "form"
	MatchViewResults = "results"
)

// 案件一覧領域のビュー状態
const (
	AnkenViewList      = "list"
	AnkenViewMailModal = "mail_modal"
)

// SessionState はセッションごとの表示状態。
// マッチング領域と案件一覧領域は独立した状態機械で、同時にアクティブになり得る。
type SessionState struct {
	MatchView     string                            `json:"match_view"`
	Results       *matchingapimodels.MatchingResult `json:"results,omitempty"`
	AnkenView     string                            `json:"anken_view"`
	SelectedAnken *ankenapimodels.AnkenRecord       `json:"selected_anken,omitempty"`
}

type Provider interface {
	Get(sessionID string) SessionState
	// SetResults はForm→Resultsへ遷移する。正規化成功時のみ呼ばれる。
	// 同時実行の要求があった場合は後に完了した方で上書きされる。
	SetResults(sessionID string, result matchingapimodels.MatchingResult)
	// ResetToForm はResults→Formへ戻り、保持していた結果を全て破棄する
	ResetToForm(sessionID string)
	OpenMail(sessionID string, rec ankenapimodels.AnkenRecord)
	CloseMail(sessionID string)
}

var Instance Provider

func Init() {
	Instance = &impl{
		sessions: map[string]*SessionState{},
	}
}

type impl struct {
	mu       sync.RWMutex
	sessions map[string]*SessionState //map[sessionID]
}

func (i *impl) Get(sessionID string) SessionState {
	i.mu.RLock()
	defer i.mu.RUnlock()
	state, ok := i.sessions[sessionID]
	if !ok {
		return newState()
	}
	return *state
}

func (i *impl) SetResults(sessionID string, result matchingapimodels.MatchingResult) {
	i.mu.Lock()
	defer i.mu.Unlock()
	state := i.getOrCreate(sessionID)
	state.MatchView = MatchViewResults
	state.Results = &result
}

func (i *impl) ResetToForm(sessionID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	state := i.getOrCreate(sessionID)
	state.MatchView = MatchViewForm
	state.Results = nil
}

func (i *impl) OpenMail(sessionID string, rec ankenapimodels.AnkenRecord) {
	i.mu.Lock()
	defer i.mu.Unlock()
	state := i.getOrCreate(sessionID)
	state.AnkenView = AnkenViewMailModal
	state.SelectedAnken = &rec
}

func (i *impl) CloseMail(sessionID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	state := i.getOrCreate(sessionID)
	state.AnkenView = AnkenViewList
	state.SelectedAnken = nil
}

func (i *impl) getOrCreate(sessionID string) *SessionState {
	state, ok := i.sessions[sessionID]
	if !ok {
		created := newState()
		state = &created
		i.sessions[sessionID] = state
	}
	return state
}

func newState() SessionState {
	return SessionState{
		MatchView: MatchViewForm,
		AnkenView: AnkenViewList,
	}
}
