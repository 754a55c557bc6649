package fiberlog

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestAccessLog(t *testing.T) {
	t.Run(`concurrent latency check`, func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		app := fiber.New()
		app.Use(New(Config{
			Logger: logger,
			Tags:   []string{TagPath, TagLatency},
		}))
		app.Get("/slow", func(ctx *fiber.Ctx) error {
			time.Sleep(150 * time.Millisecond)
			return ctx.SendString("ok")
		})
		app.Get("/fast", func(ctx *fiber.Ctx) error {
			return ctx.SendString("ok")
		})

		// 遅いリクエストの処理中に速いリクエストを完了させても
		// 遅い方のレイテンシ計測が巻き戻らないこと
		wg := sync.WaitGroup{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := app.Test(httptest.NewRequest("GET", "/slow", nil), 5000)
			require.Nil(t, err)
		}()
		time.Sleep(50 * time.Millisecond)
		_, err := app.Test(httptest.NewRequest("GET", "/fast", nil))
		require.Nil(t, err)
		wg.Wait()

		var slowEntry *logrus.Entry
		for _, entry := range hook.AllEntries() {
			if entry.Data[TagPath] == "/slow" {
				slowEntry = entry
			}
		}
		require.NotNil(t, slowEntry)
		latency, err := time.ParseDuration(slowEntry.Data[TagLatency].(string))
		require.Nil(t, err)
		require.GreaterOrEqual(t, latency, 140*time.Millisecond)
	})
}
