package matchinghandler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"

	matchingapimodels "anken-match-backend/models/api/matching"
)

var (
	errInvalidFormat     = errors.New("Invalid response format")
	errCandidatesNoArray = errors.New("マッチング結果（candidates）は配列である必要があります")
)

// Normalize はバックエンドの生JSONを表示モデルへ変換する。
// statusがsuccessかつresult.candidatesが配列であることを厳格に検証し、
// 欠落や型不一致は空リストに握りつぶさずエラーにする。
// 推奨アクションと比較チャートは任意項目で、無ければ空リスト。
func Normalize(raw []byte) (*matchingapimodels.MatchingResult, error) {
	resp := matchingapimodels.BackendResponse{}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errInvalidFormat
	}
	if resp.Status != "success" || resp.Result == nil {
		return nil, errInvalidFormat
	}
	candidatesRaw := bytes.TrimSpace(resp.Result.Candidates)
	if len(candidatesRaw) == 0 || candidatesRaw[0] != '[' {
		return nil, errCandidatesNoArray
	}
	candidates := []matchingapimodels.Candidate{}
	if err := json.Unmarshal(candidatesRaw, &candidates); err != nil {
		return nil, errCandidatesNoArray
	}

	for n := range candidates {
		candidates[n].ReceivedDateTime = FormatDateTime(candidates[n].ReceivedDateTime)
	}

	actions := resp.Result.RecommendedActions
	if actions == nil {
		actions = []string{}
	}
	chart := resp.Result.ComparisonChart
	if chart == nil {
		chart = []matchingapimodels.ComparisonChartRow{}
	}
	return &matchingapimodels.MatchingResult{
		Candidates:         candidates,
		RecommendedActions: actions,
		ComparisonChart:    chart,
	}, nil
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// FormatDateTime はISO-8601の受信日時を「YYYY年MM月DD日 HH:MM」へ変換する。
// タイムゾーンの無いISO文字列はローカルタイムとして解釈する（UTC正規化しない）。
// 解釈できない文字列はそのまま返す。
func FormatDateTime(isoDateTime string) string {
	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, isoDateTime, time.Local)
		if err == nil {
			t = t.In(time.Local)
			return fmt.Sprintf("%04d年%02d月%02d日 %02d:%02d",
				t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
		}
	}
	return isoDateTime
}
