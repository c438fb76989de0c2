package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/havenlet/leasing/internal/leasing/blob"
	"github.com/havenlet/leasing/pkg/slogx"
)

// ErrBlobUnavailable reports that no blob gateway is configured, so
// document uploads cannot be presigned.
var ErrBlobUnavailable = errors.New("blob gateway not configured")

// DocumentService hands out presigned upload URLs for custom lease
// agreements. The service never stores document bytes; the returned object
// URL is what callers persist on a lease.
type DocumentService struct {
	Blob blob.Gateway
}

func (s *DocumentService) UploadURL(ctx context.Context, ownerID, filename, contentType string) (blob.PresignedURL, error) {
	if s.Blob == nil {
		return blob.PresignedURL{}, ErrBlobUnavailable
	}
	if filename == "" {
		return blob.PresignedURL{}, ErrInvalidRequest
	}
	if contentType == "" {
		contentType = "application/pdf"
	}

	url, err := s.Blob.UploadURL(ctx, ownerID, filename, contentType)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to presign upload", slog.Any("error", err))
		return blob.PresignedURL{}, err
	}
	return url, nil
}
