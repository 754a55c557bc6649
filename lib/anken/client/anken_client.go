package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	ankenapimodels "anken-match-backend/models/api/anken"
)

type Provider interface {
	GetList(ctx context.Context) ([]ankenapimodels.AnkenRecord, error)
	GetByID(ctx context.Context, id string) (*ankenapimodels.AnkenRecord, error)
}

var Instance Provider

type impl struct {
	baseUrl string
}

func NewProvider(baseUrl string) {
	Instance = &impl{
		baseUrl: baseUrl,
	}
}

const listPathTpl = "%v/exec?type=anken_format"

func (i impl) GetList(ctx context.Context) ([]ankenapimodels.AnkenRecord, error) {
	uri := fmt.Sprintf(listPathTpl, i.baseUrl)
	resp := ankenapimodels.ListResponse{}
	err := i.sendRequest(ctx, uri, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Records, nil
}

func (i impl) GetByID(ctx context.Context, id string) (*ankenapimodels.AnkenRecord, error) {
	uri := fmt.Sprintf(listPathTpl+"&id=%v", i.baseUrl, id)
	resp := ankenapimodels.ListResponse{}
	err := i.sendRequest(ctx, uri, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Records) == 0 {
		return nil, nil
	}
	return &resp.Records[0], nil
}

func (i impl) sendRequest(ctx context.Context, uri string, resp *ankenapimodels.ListResponse) error {
	logger := log.WithField("external_request", uri)
	r, _ := http.NewRequestWithContext(ctx, "GET", uri, nil)
	r.Header.Add("Content-Type", "application/json")
	client := &http.Client{}
	response, err := client.Do(r)
	if err != nil {
		logger.WithError(err).Error("案件APIへの接続に失敗")
		return errors.Wrap(err, "案件APIへの接続に失敗しました")
	}
	defer response.Body.Close()
	responseBody, _ := io.ReadAll(response.Body)
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		logger.
			WithField("status_code", response.StatusCode).
			WithField("response_body", string(responseBody)).
			Error("案件APIがエラーを返却")
		return errors.Errorf("HTTP %v", response.StatusCode)
	}
	err = json.Unmarshal(responseBody, resp)
	if err != nil {
		logger.WithError(err).Error("案件APIレスポンスの解析に失敗")
		return errors.Wrap(err, "案件APIレスポンスの解析に失敗しました")
	}
	return nil
}
