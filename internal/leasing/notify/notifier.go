// Package notify dispatches email/notification events to the external
// delivery service. Dispatch is fire-and-forget: failures are logged by the
// caller and never affect the primary operation.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Event names understood by the delivery service.
const (
	EventApplicationSubmitted = "application.submitted"
	EventApplicationDecided   = "application.decided"
	EventLeaseInviteCreated   = "lease.invite_created"
	EventLeaseSigned          = "lease.signed"
	EventInvoiceCreated       = "invoice.created"
)

type Notification struct {
	Event     string            `json:"event"`
	Recipient string            `json:"recipient"` // user id; delivery service resolves the address
	Data      map[string]string `json:"data,omitempty"`
}

type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// Client posts notifications to the delivery service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Send(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/notifications", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call notifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notifier returned status %d", resp.StatusCode)
	}
	return nil
}

// Noop discards all notifications. Used when no delivery service is
// configured and in tests.
type Noop struct{}

func (Noop) Send(ctx context.Context, n Notification) error { return nil }
