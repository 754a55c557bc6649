package matchingapimodels

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	ActionMatchingYoin = "matching_yoin"
	DummyText          = "dummy"
)

// MatchingPayload はマッチングAPI呼び出しの正規エンベロープ。
// Anken は必ずJSON文字列（ネストオブジェクトではない）。二重エンコードは
// バックエンド契約上の仕様。
type MatchingPayload struct {
	Inputs       PayloadInputs `json:"inputs"`
	ResponseMode string        `json:"response_mode"`
	User         string        `json:"user"`
}

type PayloadInputs struct {
	Action string `json:"action"`
	Anken  string `json:"anken"`
	Text   string `json:"text"`
}

// AnkenData はAnken文字列にエンコードされる4つの業務フィールド。
// 入力元に値が無い場合も空文字で必ず出力する。
type AnkenData struct {
	AnkenName         string `json:"案件名"`
	RequiredSkill     string `json:"必須スキル"`
	UnitPrice         string `json:"単価"`
	LocationWorkStyle string `json:"勤務地および勤務形態"`
}

// FormRequest は手入力フォームからのマッチング要求
type FormRequest struct {
	AnkenName         string `json:"案件名"`
	RequiredSkill     string `json:"必須スキル"`
	UnitPrice         string `json:"単価"`
	LocationWorkStyle string `json:"勤務地および勤務形態"`
}

func (r FormRequest) Validate() error {
	if r.AnkenName == "" {
		return errors.New("案件名は必須です")
	}
	return nil
}

// RelayRequest は/api/matching の中継リクエスト。userInput は
// MatchingPayload をJSON文字列化したもの。
type RelayRequest struct {
	UserInput string `json:"userInput"`
}

// BackendRequest はマッチングAPI（/matching_yoin）の期待形式
type BackendRequest struct {
	Query string `json:"query"`
	Anken string `json:"anken"`
}

// BackendResponse はマッチングAPIの生レスポンス。candidates は
// 型検証のため RawMessage のまま保持する。
type BackendResponse struct {
	Status string         `json:"status"`
	Result *BackendResult `json:"result"`
}

type BackendResult struct {
	Candidates         json.RawMessage      `json:"candidates"`
	RecommendedActions []string             `json:"推奨アクション"`
	ComparisonChart    []ComparisonChartRow `json:"比較チャート"`
}

// Candidate はバックエンドが返す候補要員
type Candidate struct {
	YoinID           string       `json:"要員ID"`
	ReceivedDateTime string       `json:"受信日時"`
	YoinInfo         EmployeeInfo `json:"要員情報"`
	MatchScore       Score        `json:"マッチ度"`
	ReasonComment    string       `json:"理由コメント"`
}

type EmployeeInfo struct {
	Name            string `json:"氏名"`
	Age             string `json:"年齢"`
	Skill           string `json:"スキル"`
	NearestStation  string `json:"最寄駅"`
	PreferWorkStyle string `json:"希望勤務形態"`
	Note            string `json:"備考"`
}

// Score はマッチ度。バックエンドは数値("87")と文字列の両方を返すため、
// 受信した表現のまま保持して透過する。整数への変換は表示層の責務。
type Score struct {
	raw    string
	quoted bool
}

func NewScore(raw string) Score {
	_, err := strconv.Atoi(raw)
	return Score{raw: raw, quoted: err != nil || raw == ""}
}

func (s *Score) UnmarshalJSON(data []byte) error {
	str := strings.TrimSpace(string(data))
	s.quoted = len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"'
	if s.quoted {
		str = str[1 : len(str)-1]
	}
	s.raw = str
	return nil
}

func (s Score) MarshalJSON() ([]byte, error) {
	// 文字列で受信したものは文字列、数値で受信したものは数値のまま返す
	if !s.quoted && s.raw != "" {
		return []byte(s.raw), nil
	}
	return json.Marshal(s.raw)
}

func (s Score) String() string {
	return s.raw
}

// Int は表示用の整数変換。parseInt(x, 10) 相当で先頭の数値部のみ読む。
func (s Score) Int() int {
	str := strings.TrimSpace(s.raw)
	end := 0
	for end < len(str) && str[end] >= '0' && str[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.Atoi(str[:end])
	if err != nil {
		return 0
	}
	return v
}

// ComparisonChartRow は要員名1つをキーに3軸の評価を持つ比較チャート行。
// 評価記号は ◎ / ⚪ / △ の3段階。
type ComparisonChartRow map[string]ChartRatings

type ChartRatings struct {
	SkillMatch     string `json:"スキルのマッチ度"`
	WorkStyleMatch string `json:"勤務形態のマッチ度"`
	PriceMatch     string `json:"単価のマッチ度"`
}

// MatchingResult は正規化済みの表示モデル
type MatchingResult struct {
	Candidates         []Candidate          `json:"candidates"`
	RecommendedActions []string             `json:"推奨アクション"`
	ComparisonChart    []ComparisonChartRow `json:"比較チャート"`
}
