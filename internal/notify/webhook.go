package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Webhook posts camera up/down notices as JSON to a relay URL. The
// payload shape matches what Slack-compatible relays expect, so the
// same hook works for Slack, Discord slash-webhook bridges, or the
// operator's own relay.
type Webhook struct {
	URL    string
	Client *http.Client
}

func NewWebhook(url string) *Webhook {
	if url == "" {
		return nil
	}
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// webhookPayload keeps title and body as separate fields for the
// operator's own relay; text carries the combined rendering that
// Slack-compatible receivers display.
type webhookPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Text  string `json:"text"`
}

func (w *Webhook) Send(ctx context.Context, title, text string) error {
	if w == nil || w.URL == "" {
		return errors.New("webhook disabled")
	}
	body, _ := json.Marshal(webhookPayload{
		Title: title,
		Body:  text,
		Text:  "*" + title + "*\n" + text,
	})
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return errors.New("webhook non-2xx")
	}
	return nil
}
