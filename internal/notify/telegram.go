package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Telegram posts messages to a chat via the bot API.
type Telegram struct {
	Token  string
	ChatID string

	hc   *http.Client
	base string
}

func NewTelegram(token, chatID string) *Telegram {
	return &Telegram{
		Token:  token,
		ChatID: chatID,
		hc:     &http.Client{Timeout: 10 * time.Second},
	}
}

// NewTelegramWithBase targets an alternate API endpoint, for tests.
func NewTelegramWithBase(hc *http.Client, base, token, chatID string) *Telegram {
	return &Telegram{Token: token, ChatID: chatID, hc: hc, base: base}
}

func (t *Telegram) Send(ctx context.Context, message string) error {
	if t.Token == "" || t.ChatID == "" {
		return fmt.Errorf("telegram not configured")
	}

	base := t.base
	if base == "" {
		base = "https://api.telegram.org"
	}

	payload, err := json.Marshal(map[string]any{
		"chat_id":                  t.ChatID,
		"text":                     message,
		"disable_web_page_preview": true,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/bot%s/sendMessage", base, t.Token), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := t.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("telegram status %d", res.StatusCode)
	}
	return nil
}
