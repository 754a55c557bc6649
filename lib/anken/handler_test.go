package ankenhandler

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	ankenclient "anken-match-backend/lib/anken/client"
	ankenapimodels "anken-match-backend/models/api/anken"
)

type fakeAnkenClient struct {
	records []ankenapimodels.AnkenRecord
	err     error
}

func (f *fakeAnkenClient) GetList(ctx context.Context) ([]ankenapimodels.AnkenRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeAnkenClient) GetByID(ctx context.Context, id string) (*ankenapimodels.AnkenRecord, error) {
	for n := range f.records {
		if f.records[n].ID != nil && *f.records[n].ID == id {
			return &f.records[n], nil
		}
	}
	return nil, nil
}

func makeRecords(n int) []ankenapimodels.AnkenRecord {
	list := make([]ankenapimodels.AnkenRecord, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("A%03d", i+1)
		name := fmt.Sprintf("案件%d", i+1)
		list = append(list, ankenapimodels.AnkenRecord{ID: &id, AnkenName: &name})
	}
	return list
}

func TestAnkenList(t *testing.T) {
	NewHandler()

	t.Run(`page count check`, func(t *testing.T) {
		require.Equal(t, 1, PagesOf(0))
		require.Equal(t, 1, PagesOf(1))
		require.Equal(t, 1, PagesOf(50))
		require.Equal(t, 2, PagesOf(51))
		require.Equal(t, 3, PagesOf(120))
	})

	t.Run(`empty list first page check`, func(t *testing.T) {
		ankenclient.Instance = &fakeAnkenClient{records: []ankenapimodels.AnkenRecord{}}
		list, rowCount, pageCount, err := Instance.List(context.TODO(), 1)
		require.Nil(t, err)
		// 0件でも1ページ目は有効（エラーではなく空リスト）
		require.Len(t, list, 0)
		require.Equal(t, 0, rowCount)
		require.Equal(t, 1, pageCount)
	})

	t.Run(`pagination slicing check`, func(t *testing.T) {
		ankenclient.Instance = &fakeAnkenClient{records: makeRecords(120)}

		list, rowCount, pageCount, err := Instance.List(context.TODO(), 1)
		require.Nil(t, err)
		require.Len(t, list, 50)
		require.Equal(t, 120, rowCount)
		require.Equal(t, 3, pageCount)
		require.Equal(t, "A001", *list[0].ID)

		list, _, _, err = Instance.List(context.TODO(), 3)
		require.Nil(t, err)
		require.Len(t, list, 20)
		require.Equal(t, "A101", *list[0].ID)
	})

	t.Run(`page out of range clamp check`, func(t *testing.T) {
		ankenclient.Instance = &fakeAnkenClient{records: makeRecords(60)}

		// 範囲外のページは最終ページへ丸める
		list, _, _, err := Instance.List(context.TODO(), 99)
		require.Nil(t, err)
		require.Len(t, list, 10)

		list, _, _, err = Instance.List(context.TODO(), 0)
		require.Nil(t, err)
		require.Len(t, list, 50)
	})
}

func TestAnkenGetByID(t *testing.T) {
	NewHandler()

	t.Run(`found check`, func(t *testing.T) {
		ankenclient.Instance = &fakeAnkenClient{records: makeRecords(3)}
		rec, err := Instance.GetByID(context.TODO(), "A002")
		require.Nil(t, err)
		require.Equal(t, "案件2", *rec.AnkenName)
	})

	t.Run(`not found check`, func(t *testing.T) {
		ankenclient.Instance = &fakeAnkenClient{records: makeRecords(3)}
		_, err := Instance.GetByID(context.TODO(), "A999")
		require.NotNil(t, err)
		require.Equal(t, "案件が見つかりませんでした", err.Error())
	})
}
