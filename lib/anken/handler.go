package ankenhandler

import (
	"context"

	"github.com/pkg/errors"

	ankenclient "anken-match-backend/lib/anken/client"
	ankenapimodels "anken-match-backend/models/api/anken"
)

// PageSize は1ページあたり件数
const PageSize = 50

var ErrNotFound = errors.New("案件が見つかりませんでした")

type Provider interface {
	List(ctx context.Context, page int) (list []ankenapimodels.AnkenRecord, rowCount, pageCount int, err error)
	GetByID(ctx context.Context, id string) (*ankenapimodels.AnkenRecord, error)
	GetAll(ctx context.Context) ([]ankenapimodels.AnkenRecord, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// List は案件一覧のpageページ目を返す。
// 総ページ数 = ceil(N/PageSize)。N=0でも1ページ目は有効（空リストを返す）。
func (i impl) List(ctx context.Context, page int) (list []ankenapimodels.AnkenRecord, rowCount, pageCount int, err error) {
	records, err := ankenclient.Instance.GetList(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	rowCount = len(records)
	pageCount = PagesOf(rowCount)
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if start >= rowCount {
		return []ankenapimodels.AnkenRecord{}, rowCount, pageCount, nil
	}
	if end > rowCount {
		end = rowCount
	}
	return records[start:end], rowCount, pageCount, nil
}

func (i impl) GetByID(ctx context.Context, id string) (*ankenapimodels.AnkenRecord, error) {
	rec, err := ankenclient.Instance.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (i impl) GetAll(ctx context.Context) ([]ankenapimodels.AnkenRecord, error) {
	return ankenclient.Instance.GetList(ctx)
}

// PagesOf は件数から総ページ数を求める
func PagesOf(rowCount int) int {
	if rowCount <= 0 {
		return 1
	}
	return (rowCount + PageSize - 1) / PageSize
}
