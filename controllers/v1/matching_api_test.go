package apiv1

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	matchinghandler "anken-match-backend/lib/matching"
	matchingclient "anken-match-backend/lib/matching/client"
)

func newRelayApp() *fiber.App {
	matchinghandler.NewHandler()
	app := fiber.New()
	InitMatchingRelayRouters(app)
	return app
}

const relayUserInput = `{"userInput":"{\"inputs\":{\"action\":\"matching_yoin\",\"anken\":\"{}\",\"text\":\"dummy\"},\"response_mode\":\"blocking\",\"user\":\"mini_match_user\"}"}`

func TestMatchingRelayEndpoint(t *testing.T) {
	t.Run(`user input missing check`, func(t *testing.T) {
		app := newRelayApp()
		req := httptest.NewRequest("POST", "/api/matching", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		parsed := map[string]string{}
		require.Nil(t, json.Unmarshal(body, &parsed))
		require.Equal(t, "User input is required", parsed["error"])
	})

	t.Run(`config missing check`, func(t *testing.T) {
		matchingclient.NewProvider("", "development")
		app := newRelayApp()
		req := httptest.NewRequest("POST", "/api/matching", strings.NewReader(relayUserInput))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		parsed := map[string]string{}
		require.Nil(t, json.Unmarshal(body, &parsed))
		// 環境値を一切含まない固定メッセージ
		require.Equal(t, "API configuration missing", parsed["error"])
	})

	t.Run(`success passthrough check`, func(t *testing.T) {
		backendBody := `{"status":"success","result":{"candidates":[]}}`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(backendBody))
		}))
		defer server.Close()
		matchingclient.NewProvider(strings.TrimPrefix(server.URL, "http://"), "development")

		app := newRelayApp()
		req := httptest.NewRequest("POST", "/api/matching", strings.NewReader(relayUserInput))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		// バックエンドのJSONは無加工で返る
		require.Equal(t, backendBody, string(body))
	})

	t.Run(`upstream failure check`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()
		matchingclient.NewProvider(strings.TrimPrefix(server.URL, "http://"), "development")

		app := newRelayApp()
		req := httptest.NewRequest("POST", "/api/matching", strings.NewReader(relayUserInput))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		parsed := map[string]string{}
		require.Nil(t, json.Unmarshal(body, &parsed))
		require.Equal(t, "Internal server error", parsed["error"])
	})
}
