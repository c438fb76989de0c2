package domain

import "time"

// InviteTTL is the fixed validity window for signing invites.
const InviteTTL = 7 * 24 * time.Hour

// LeaseInvite is a single-use signing token bound to exactly one lease.
// TokenHash stores the SHA-256 fingerprint of the opaque token; the raw token
// travels with the link and is never persisted. TenantID stays empty until
// signing binds the acting user, and Signed flips false to true exactly once.
type LeaseInvite struct {
	ID        string
	TokenHash string
	LeaseID   string
	LeaseType LeaseType
	TenantID  string
	CreatedBy string
	ExpiresAt time.Time
	Signed    bool
	SignedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i LeaseInvite) ExpiredAt(t time.Time) bool { return t.After(i.ExpiresAt) }
