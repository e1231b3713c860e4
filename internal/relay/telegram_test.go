package relay

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedCall struct {
	path        string
	contentType string
	body        []byte
}

func newTestTelegram(t *testing.T, status int, reply string) (*Telegram, *capturedCall) {
	t.Helper()
	call := &capturedCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call.path = r.URL.Path
		call.contentType = r.Header.Get("Content-Type")
		call.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	tg := NewTelegram("test-token", "42", zap.NewNop())
	tg.baseURL = srv.URL
	return tg, call
}

func TestTelegram_NotConfigured(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls++ }))
	defer srv.Close()

	tg := NewTelegram("", "", zap.NewNop())
	tg.baseURL = srv.URL

	assert.ErrorIs(t, tg.SendMessage(context.Background(), "hi"), ErrNotConfigured)
	assert.ErrorIs(t, tg.SendPhoto(context.Background(), "http://x/y.jpg", "hi"), ErrNotConfigured)
	assert.Zero(t, calls, "no network attempt without credentials")
}

func TestTelegram_SendMessage(t *testing.T) {
	tg, call := newTestTelegram(t, http.StatusOK, `{"ok":true}`)

	require.NoError(t, tg.SendMessage(context.Background(), "<b>hello</b>"))
	assert.Equal(t, "/bottest-token/sendMessage", call.path)
	assert.Equal(t, "application/json", call.contentType)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(call.body, &payload))
	assert.Equal(t, "42", payload["chat_id"])
	assert.Equal(t, "<b>hello</b>", payload["text"])
	assert.Equal(t, "HTML", payload["parse_mode"])
}

func TestTelegram_SendMessageAPIError(t *testing.T) {
	tg, _ := newTestTelegram(t, http.StatusBadRequest, `{"ok":false,"description":"chat not found"}`)

	err := tg.SendMessage(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestTelegram_SendPhotoExternalURL(t *testing.T) {
	tg, call := newTestTelegram(t, http.StatusOK, `{"ok":true}`)

	require.NoError(t, tg.SendPhoto(context.Background(), "https://cdn.example/p.jpg", "caption"))
	assert.Equal(t, "/bottest-token/sendPhoto", call.path)
	assert.Equal(t, "application/json", call.contentType)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(call.body, &payload))
	assert.Equal(t, "https://cdn.example/p.jpg", payload["photo"])
	assert.Equal(t, "caption", payload["caption"])
}

func TestTelegram_SendPhotoDataURI(t *testing.T) {
	tg, call := newTestTelegram(t, http.StatusOK, `{"ok":true}`)

	// "hello" base64-encoded
	require.NoError(t, tg.SendPhoto(context.Background(), "data:image/jpeg;base64,aGVsbG8=", "caption"))

	mediaType, params, err := mime.ParseMediaType(call.contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(strings.NewReader(string(call.body)), params["boundary"])
	fields := map[string]string{}
	var photo []byte
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, _ := io.ReadAll(part)
		if part.FormName() == "photo" {
			photo = data
			continue
		}
		fields[part.FormName()] = string(data)
	}
	assert.Equal(t, []byte("hello"), photo)
	assert.Equal(t, "42", fields["chat_id"])
	assert.Equal(t, "caption", fields["caption"])
	assert.Equal(t, "HTML", fields["parse_mode"])
}

func TestTelegram_SendPhotoBadDataURI(t *testing.T) {
	tg, call := newTestTelegram(t, http.StatusOK, `{"ok":true}`)

	assert.Error(t, tg.SendPhoto(context.Background(), "data:image/jpeg;base64", "caption"))
	assert.Error(t, tg.SendPhoto(context.Background(), "data:image/jpeg;base64,!!!", "caption"))
	assert.Empty(t, call.path, "malformed payloads never reach the API")
}
