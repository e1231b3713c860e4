package relay

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned before any network I/O when either credential
// is absent.
var ErrNotConfigured = errors.New("telegram credentials are not configured")

// Notifier forwards formatted messages to the external messaging endpoint.
// A single attempt, no retry, no queuing; callers decide whether a failure
// blocks the user-visible action.
type Notifier interface {
	SendMessage(ctx context.Context, text string) error
	// SendPhoto sends image with caption. A data: URI is uploaded as a
	// multipart payload; anything else is passed through as an external URL.
	SendPhoto(ctx context.Context, image, caption string) error
}

const defaultBaseURL = "https://api.telegram.org"

// Telegram talks to the Bot API using the two out-of-band credentials.
type Telegram struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewTelegram(token, chatID string, log *zap.Logger) *Telegram {
	return &Telegram{
		token:   token,
		chatID:  chatID,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

var _ Notifier = (*Telegram)(nil)

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (t *Telegram) SendMessage(ctx context.Context, text string) error {
	if t.token == "" || t.chatID == "" {
		return ErrNotConfigured
	}
	body, err := json.Marshal(map[string]string{
		"chat_id":    t.chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return err
	}
	return t.post(ctx, "sendMessage", "application/json", bytes.NewReader(body))
}

func (t *Telegram) SendPhoto(ctx context.Context, image, caption string) error {
	if t.token == "" || t.chatID == "" {
		return ErrNotConfigured
	}

	if !strings.HasPrefix(image, "data:") {
		body, err := json.Marshal(map[string]string{
			"chat_id":    t.chatID,
			"photo":      image,
			"caption":    caption,
			"parse_mode": "HTML",
		})
		if err != nil {
			return err
		}
		return t.post(ctx, "sendPhoto", "application/json", bytes.NewReader(body))
	}

	data, err := decodeDataURI(image)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("photo", "photo.jpg")
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	for field, value := range map[string]string{
		"chat_id":    t.chatID,
		"caption":    caption,
		"parse_mode": "HTML",
	} {
		if err := w.WriteField(field, value); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return t.post(ctx, "sendPhoto", w.FormDataContentType(), &buf)
}

func (t *Telegram) post(ctx context.Context, method, contentType string, body io.Reader) error {
	url := fmt.Sprintf("%s/bot%s/%s", t.baseURL, t.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		api.Description = "unreadable response"
	}
	if resp.StatusCode != http.StatusOK || !api.OK {
		t.log.Warn("telegram api call failed",
			zap.String("method", method),
			zap.Int("status", resp.StatusCode),
			zap.String("description", api.Description),
		)
		return fmt.Errorf("telegram %s: %s", method, api.Description)
	}
	return nil
}

// decodeDataURI extracts the raw bytes of a "data:<mime>;base64,<payload>" URI.
func decodeDataURI(uri string) ([]byte, error) {
	_, payload, ok := strings.Cut(uri, ",")
	if !ok || !strings.Contains(uri, ";base64") {
		return nil, fmt.Errorf("unsupported data uri")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data uri: %w", err)
	}
	return data, nil
}
