package service

import (
	"errors"
	"fmt"

	"github.com/havenlet/leasing/internal/leasing/domain"
)

// Domain errors shared across the leasing services. Handlers map these to
// HTTP status codes with errors.Is / errors.As.
var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidState        = errors.New("operation not allowed in current state")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInviteExpired       = errors.New("invite has expired")
	ErrInviteAlreadySigned = errors.New("invite has already been signed")
)

// ActiveLeaseError reports that the tenant already holds an active lease.
// It carries the conflicting lease so callers can act on it.
type ActiveLeaseError struct {
	ExistingLeaseID   string
	ExistingLeaseType domain.LeaseType
}

func (e *ActiveLeaseError) Error() string {
	return fmt.Sprintf("tenant already has an active lease %s (%s)", e.ExistingLeaseID, e.ExistingLeaseType)
}
