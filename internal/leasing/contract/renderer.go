// Package contract talks to the external contract-PDF rendering service.
// The renderer consumes a flat field map and returns the URL of a hosted
// document; it is always called best-effort, never inside a transaction.
package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Renderer produces a hosted lease document from a flat field map.
type Renderer interface {
	Render(ctx context.Context, fields map[string]string) (string, error)
}

// Client is an HTTP client for the rendering service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second, // rendering is slow; still bounded
		},
	}
}

type renderRequest struct {
	Template string            `json:"template"`
	Fields   map[string]string `json:"fields"`
}

type renderResponse struct {
	DocumentURL string `json:"document_url"`
}

// Render submits the field map and returns the hosted document URL.
func (c *Client) Render(ctx context.Context, fields map[string]string) (string, error) {
	body, err := json.Marshal(renderRequest{
		Template: "residential-lease",
		Fields:   fields,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode render request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/render", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call renderer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("renderer returned status %d", resp.StatusCode)
	}

	var out renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode render response: %w", err)
	}
	if out.DocumentURL == "" {
		return "", fmt.Errorf("renderer returned empty document URL")
	}

	return out.DocumentURL, nil
}
