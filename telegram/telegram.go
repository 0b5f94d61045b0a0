// Package telegram delivers text messages through the Telegram Bot API.
// It only implements sendMessage, which is all the notifier needs.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const DefaultBaseURL = "https://api.telegram.org"

// Bot sends messages to one chat on behalf of one bot.
type Bot struct {
	token  string
	chatID string

	// BaseURL can be overridden in tests.
	BaseURL string

	client *http.Client
}

// New returns a Bot delivering to the given chat.
func New(token, chatID string) *Bot {
	return &Bot{token: token, chatID: chatID, BaseURL: DefaultBaseURL, client: new(http.Client)}
}

// envelope is the Bot API response wrapper.
//
//	{"ok": false, "error_code": 400, "description": "Bad Request: chat not found"}
type envelope struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// Send delivers one plain-text message to the configured chat.
func (b *Bot) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id": b.chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s/bot%s/sendMessage", b.BaseURL, b.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("cannot create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot execute http request: %w", err)
	}
	defer resp.Body.Close()

	// reading in a buffer to be able to report the payload on errors
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return fmt.Errorf("cannot read receiving http body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		return fmt.Errorf("sendMessage: %s: %w", resp.Status, err)
	}
	if !env.OK {
		return fmt.Errorf("sendMessage: %s (code %d)", env.Description, env.ErrorCode)
	}
	return nil
}
