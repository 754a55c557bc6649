package ankenapimodels

import (
	"bytes"
	"encoding/json"
)

// AnkenRecord はスプレッドシートAPIから取得する案件レコード。
// どのフィールドも存在が保証されないため、全てポインタで保持し、
// 利用側が明示的にnilを処理する。
type AnkenRecord struct {
	ID            *string `json:"ID,omitempty"`
	AnkenName     *string `json:"案件名,omitempty"`
	ReceivedDate  *string `json:"受信日付,omitempty"`
	Subject       *string `json:"件名,omitempty"`
	WorkLocation  *string `json:"作業場所,omitempty"`
	WorkStyle     *string `json:"勤務形態,omitempty"`
	UnitPrice     *string `json:"単価,omitempty"`
	StartPeriod   *string `json:"時期,omitempty"`
	OperationDate *string `json:"稼働日付,omitempty"`
	RequiredSkill *string `json:"必須スキル,omitempty"`
	MailBody      *string `json:"メール本文,omitempty"`
}

// Title は案件名を返す。無ければ件名へフォールバック
func (r AnkenRecord) Title() string {
	if r.AnkenName != nil && *r.AnkenName != "" {
		return *r.AnkenName
	}
	if r.Subject != nil {
		return *r.Subject
	}
	return ""
}

// ListResponse は読み取りAPIのレスポンス形式。
// recordsは配列だが、ID指定取得時は単一オブジェクトで返る場合があるため
// どちらの形でも受け付ける。
type ListResponse struct {
	Records []AnkenRecord `json:"records"`
}

func (r *ListResponse) UnmarshalJSON(data []byte) error {
	envelope := struct {
		Records json.RawMessage `json:"records"`
	}{}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	raw := bytes.TrimSpace(envelope.Records)
	if len(raw) == 0 || string(raw) == "null" {
		r.Records = nil
		return nil
	}
	if raw[0] == '[' {
		return json.Unmarshal(raw, &r.Records)
	}
	single := AnkenRecord{}
	if err := json.Unmarshal(raw, &single); err != nil {
		return err
	}
	r.Records = []AnkenRecord{single}
	return nil
}
