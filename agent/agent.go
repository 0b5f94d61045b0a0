// Package agent produces an optional one-line Gemini remark about the
// portfolio, appended to the message when insights are requested.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/mjansen/vavoping"
	"github.com/mjansen/vavoping/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const instruction = `You are a sober portfolio observer.
You receive a crypto portfolio summary and reply with a single short
remark about it, 25 words at most, plain text, no advice, no emoji.`

// Commentator asks Gemini for a one-shot remark about a summary.
type Commentator struct {
	apiKey string
}

// New returns a Commentator authenticating with the given API key.
func New(apiKey string) *Commentator {
	return &Commentator{apiKey: apiKey}
}

// Comment implements vavoping.Commentator. A failure here never fails the
// run, the notifier logs it and sends the message without the remark.
func (c *Commentator) Comment(ctx context.Context, s *vavoping.Summary) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("cannot initialize Gemini's client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return "", err
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: renderer.Message(s)})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from %s", model)
	}
	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}
