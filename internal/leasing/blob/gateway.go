// Package blob talks to the external blob-storage gateway. The service never
// touches document bytes itself; it requests presigned upload/download URLs
// and stores the resulting object URLs on leases.
package blob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// PresignedURL is a time-limited URL for a single upload or download.
type PresignedURL struct {
	URL       string    `json:"url"`
	ObjectURL string    `json:"object_url"` // stable URL to persist after upload
	ExpiresAt time.Time `json:"expires_at"`
}

type Gateway interface {
	UploadURL(ctx context.Context, owner, filename, contentType string) (PresignedURL, error)
	DownloadURL(ctx context.Context, objectURL string) (PresignedURL, error)
}

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

type presignRequest struct {
	Owner       string `json:"owner,omitempty"`
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	ObjectURL   string `json:"object_url,omitempty"`
}

func (c *Client) UploadURL(ctx context.Context, owner, filename, contentType string) (PresignedURL, error) {
	return c.presign(ctx, "/v1/presign/upload", presignRequest{
		Owner:       owner,
		Filename:    filename,
		ContentType: contentType,
	})
}

func (c *Client) DownloadURL(ctx context.Context, objectURL string) (PresignedURL, error) {
	return c.presign(ctx, "/v1/presign/download", presignRequest{ObjectURL: objectURL})
}

func (c *Client) presign(ctx context.Context, path string, reqBody presignRequest) (PresignedURL, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return PresignedURL{}, fmt.Errorf("failed to encode presign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return PresignedURL{}, fmt.Errorf("failed to create presign request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return PresignedURL{}, fmt.Errorf("failed to call blob gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PresignedURL{}, fmt.Errorf("blob gateway returned status %d", resp.StatusCode)
	}

	var out PresignedURL
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return PresignedURL{}, fmt.Errorf("failed to decode presign response: %w", err)
	}
	return out, nil
}
