package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WebhookSender posts delivery requests to an external gateway that owns
// the actual SMS/mail transport. The gateway sees the code exactly once;
// the server never logs it.
type WebhookSender struct {
	endpoint string
	client   *http.Client
}

func NewWebhookSender(endpoint string, client *http.Client) *WebhookSender {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &WebhookSender{endpoint: endpoint, client: client}
}

type webhookPayload struct {
	Channel string `json:"channel"`
	Message string `json:"message"`
}

func (s *WebhookSender) Send(ctx context.Context, channel, message string) error {
	body, err := json.Marshal(webhookPayload{Channel: channel, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("delivery gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delivery gateway: unexpected status %d", resp.StatusCode)
	}
	return nil
}
