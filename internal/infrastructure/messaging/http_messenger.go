package messaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"autocare/internal/domain/entities"
	"autocare/internal/usecase/interfaces"
)

// HTTPMessenger delivers prompts to the chat surface by POSTing them to an
// outbound webhook (the gateway that owns the actual messenger connection).
// The service itself stays transport-agnostic.
type HTTPMessenger struct {
	webhookURL string
	client     *http.Client
}

var _ interfaces.IMessenger = (*HTTPMessenger)(nil)

// NewHTTPMessenger reads OUTBOUND_WEBHOOK_URL. An empty URL is a
// configuration error so the caller can decide whether to run without
// outbound messaging (reminders disabled).
func NewHTTPMessenger() (*HTTPMessenger, error) {
	url := os.Getenv("OUTBOUND_WEBHOOK_URL")
	if url == "" {
		return nil, fmt.Errorf("OUTBOUND_WEBHOOK_URL is not set")
	}
	return &HTTPMessenger{
		webhookURL: url,
		client:     &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type outboundButton struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type outboundDocument struct {
	Name    string `json:"name"`
	MIME    string `json:"mime"`
	Content string `json:"content"` // base64
}

type outboundMessage struct {
	UserID   string            `json:"user_id"`
	Text     string            `json:"text"`
	Buttons  []outboundButton  `json:"buttons,omitempty"`
	Document *outboundDocument `json:"document,omitempty"`
}

func (m *HTTPMessenger) SendPrompt(ctx context.Context, userID string, prompt entities.Prompt) error {
	msg := outboundMessage{UserID: userID, Text: prompt.Text}
	for _, b := range prompt.Buttons {
		msg.Buttons = append(msg.Buttons, outboundButton{ID: b.ID, Label: b.Label})
	}
	if prompt.Document != nil {
		msg.Document = &outboundDocument{
			Name:    prompt.Document.Name,
			MIME:    prompt.Document.MIME,
			Content: base64.StdEncoding.EncodeToString(prompt.Document.Content),
		}
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal outbound message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create outbound request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("outbound webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("outbound webhook returned status %d", resp.StatusCode)
	}
	return nil
}
