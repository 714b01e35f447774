package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBotAPI answers sendMessage like the Bot API and records the last payload.
func fakeBotAPI(t *testing.T, ok bool, got *map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot123:abc/sendMessage", r.URL.Path)
		payload := map[string]string{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		*got = payload

		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":1700000000,"chat":{"id":-100,"type":"group"},"text":"hello"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTelebotAdapter_SendMessage(t *testing.T) {
	var payload map[string]string
	srv := fakeBotAPI(t, true, &payload)

	bot, err := NewBot(BotConfig{Token: "123:abc", URL: srv.URL, Offline: true})
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage(-100, "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "-100", payload["chat_id"])
	assert.Equal(t, "hello", payload["text"])
}

func TestTelebotAdapter_SendMessageSurfacesAPIError(t *testing.T) {
	var payload map[string]string
	srv := fakeBotAPI(t, false, &payload)

	bot, err := NewBot(BotConfig{Token: "123:abc", URL: srv.URL, Offline: true})
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage(-100, "hello", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}
