package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	matchingapimodels "anken-match-backend/models/api/matching"
)

// クライアントへ返すエラー。内部構成値（ホスト等）は絶対に含めない。
// 詳細はサーバ側ログにのみ出力する。
var (
	ErrConfigMissing = errors.New("API configuration missing")
	ErrUpstream      = errors.New("Internal server error")
)

type Provider interface {
	// Relay はマッチングAPIへリクエストを転送し、成功時は生JSONを無加工で返す
	Relay(ctx context.Context, req matchingapimodels.BackendRequest) (raw []byte, err error)
}

var Instance Provider

type impl struct {
	host        string
	environment string
}

func NewProvider(host, environment string) {
	Instance = &impl{
		host:        host,
		environment: environment,
	}
}

const matchingPath = "/matching_yoin"

func (i impl) Relay(ctx context.Context, req matchingapimodels.BackendRequest) ([]byte, error) {
	if i.host == "" {
		log.Error("MATCHING_API_IP が未設定です")
		return nil, ErrConfigMissing
	}
	uri := fmt.Sprintf("%v://%v%v", i.scheme(), i.host, matchingPath)
	body, err := json.Marshal(req)
	if err != nil {
		log.WithError(err).Error("マッチングAPIリクエストのシリアライズに失敗")
		return nil, ErrUpstream
	}

	logger := log.
		WithField("external_request", uri).
		WithField("request_body", string(body))

	r, _ := http.NewRequestWithContext(ctx, "POST", uri, bytes.NewBuffer(body))
	r.Header.Add("Content-Type", "application/json")
	client := &http.Client{}
	response, err := client.Do(r)
	if err != nil {
		logger.WithError(err).Error("マッチングAPIへの接続に失敗")
		return nil, ErrUpstream
	}
	defer response.Body.Close()
	responseBody, _ := io.ReadAll(response.Body)
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		// 上流のステータスコードはクライアントへ伝播しない
		logger.
			WithField("status_code", response.StatusCode).
			WithField("response_body", string(responseBody)).
			Error("マッチングAPIがエラーを返却")
		return nil, ErrUpstream
	}
	return responseBody, nil
}

// scheme はデプロイ環境フラグでのみ決まる（リクエスト内容には依存しない）
func (i impl) scheme() string {
	if i.environment == "production" {
		return "https"
	}
	return "http"
}
