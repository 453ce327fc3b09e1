package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// DefaultBaseURL is the Slack Web API root.
const DefaultBaseURL = "https://slack.com/api"

// Client calls the Slack Web API with bearer-token auth.
type Client struct {
	// BaseURL may be overridden in tests.
	BaseURL string

	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Web API client. Outbound calls are bounded by the
// client timeout; a timeout is reported the same way as any other error.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

type openViewRequest struct {
	TriggerID string    `json:"trigger_id"`
	View      ModalView `json:"view"`
}

// OpenView opens a modal for the single-use trigger identifier.
func (c *Client) OpenView(ctx context.Context, triggerID string, view ModalView) error {
	body := openViewRequest{TriggerID: triggerID, View: view}
	return c.post(ctx, "/views.open", body)
}

type postMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// PostMessage posts a plain message to a channel.
func (c *Client) PostMessage(ctx context.Context, channel, text string) error {
	body := postMessageRequest{Channel: channel, Text: text}
	return c.post(ctx, "/chat.postMessage", body)
}

func (c *Client) post(ctx context.Context, method string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+method, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Pragma", "No-Cache")
	req.Header.Set("Cache-Control", "private, no-cache, no-store, must-revalidate")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s returned status %d", method, resp.StatusCode)
	}

	c.logger.Debug("slack api call succeeded", "method", method)
	return nil
}
