// Package mailchimp is a minimal client for the Mailchimp lists batch
// endpoint, covering the single subscribe call the signup flow makes.
package mailchimp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Member is one contact to enroll, with the merge fields the audience
// defines for F3 signups.
type Member struct {
	EmailAddress string
	FullName     string
	Phone        string
	F3Name       string
}

// Client talks to one Mailchimp audience.
type Client struct {
	// BaseURL may be overridden in tests. Defaults to
	// "https://" + the configured datacenter endpoint.
	BaseURL string

	listID     string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the configured datacenter endpoint
// (e.g. "us14.api.mailchimp.com") and list.
func NewClient(apiEndpoint, listID, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL:    "https://" + apiEndpoint,
		listID:     listID,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

type mergeFields struct {
	FullName string `json:"FULLNAME"`
	Phone    string `json:"PHONE"`
	F3Name   string `json:"F3NAME"`
}

type batchMember struct {
	EmailAddress string      `json:"email_address"`
	Status       string      `json:"status"`
	EmailType    string      `json:"email_type"`
	MergeFields  mergeFields `json:"merge_fields"`
}

type batchRequest struct {
	Members        []batchMember `json:"members"`
	SyncTags       bool          `json:"sync_tags"`
	UpdateExisting bool          `json:"update_existing"`
}

// Subscribe adds one member to the list. Any transport error or non-2xx
// response is returned as an error; the caller records it as a failed
// outcome rather than propagating it.
func (c *Client) Subscribe(ctx context.Context, m Member) error {
	body := batchRequest{
		Members: []batchMember{
			{
				EmailAddress: m.EmailAddress,
				Status:       "subscribed",
				EmailType:    "html",
				MergeFields: mergeFields{
					FullName: m.FullName,
					Phone:    m.Phone,
					F3Name:   m.F3Name,
				},
			},
		},
		SyncTags:       false,
		UpdateExisting: false,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal subscribe request: %w", err)
	}

	url := fmt.Sprintf("%s/3.0/lists/%s?skip_merge_validation=true", c.BaseURL, c.listID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build subscribe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Mailchimp basic auth ignores the username; the API key is the password.
	req.SetBasicAuth("anystring", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("subscribe request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("subscribe returned status %d", resp.StatusCode)
	}

	c.logger.Debug("mailchimp subscribe succeeded", "list_id", c.listID)
	return nil
}
