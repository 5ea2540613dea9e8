package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ResendConfig holds Resend configuration
type ResendConfig struct {
	APIKey    string
	Endpoint  string
	FromEmail string
	FromName  string
}

// ResendClient sends emails via the Resend API
type ResendClient struct {
	config     ResendConfig
	httpClient *http.Client
}

// NewResendClient creates a new Resend email client
func NewResendClient(config ResendConfig) *ResendClient {
	if config.Endpoint == "" {
		config.Endpoint = "https://api.resend.com/emails"
	}
	return &ResendClient{
		config: config,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Message represents an email to send
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

// ResendRequest represents the Resend API request body
type ResendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
}

// Send sends an email via Resend
func (c *ResendClient) Send(ctx context.Context, msg *Message) error {
	from := c.config.FromEmail
	if c.config.FromName != "" {
		from = c.config.FromName + " <" + c.config.FromEmail + ">"
	}

	request := ResendRequest{
		From:    from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.Endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}

	return nil
}
