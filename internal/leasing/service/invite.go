package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/notify"
	"github.com/havenlet/leasing/internal/leasing/store"
	"github.com/havenlet/leasing/pkg/cryptox"
	"github.com/havenlet/leasing/pkg/idx"
	"github.com/havenlet/leasing/pkg/slogx"
)

// InviteService mints and resolves lease signing invites. The raw token is
// returned exactly once at mint time; only its fingerprint is stored.
type InviteService struct {
	Store    store.Store
	Notifier notify.Notifier

	// PublicBaseURL is the externally reachable origin used to build the
	// shareable signing link.
	PublicBaseURL string
}

// MintedInvite carries the one-time raw token alongside the stored record.
type MintedInvite struct {
	Invite   domain.LeaseInvite
	Token    string
	ShareURL string
}

// InviteView is the applicant-facing projection of an invite: the lease terms
// the signer is about to agree to, without landlord-only data.
type InviteView struct {
	InviteID      string
	LeaseType     domain.LeaseType
	StartDate     time.Time
	EndDate       time.Time
	RentAmount    int64
	DepositAmount int64
	DocumentURL   string
	Property      string
	LandlordName  string
	ExpiresAt     time.Time
}

// Generate mints a signing invite for a DRAFT lease the caller owns. Every
// call produces a fresh token; earlier unused invites for the same lease
// simply age out.
func (s *InviteService) Generate(ctx context.Context, ref domain.LeaseRef, landlordID string) (MintedInvite, error) {
	log := slogx.FromContext(ctx)

	// 1. Only the owner of a DRAFT lease can invite a signer.
	lease, err := s.Store.Leases().GetLease(ctx, ref)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return MintedInvite{}, ErrNotFound
		}
		log.Error("failed to fetch lease", slog.Any("error", err))
		return MintedInvite{}, err
	}
	if lease.LandlordID != landlordID {
		return MintedInvite{}, ErrForbidden
	}
	if lease.Status != domain.LeaseDraft {
		log.Warn("invite requested for non-draft lease",
			slog.String("lease_id", lease.ID),
			slog.String("status", string(lease.Status)),
		)
		return MintedInvite{}, ErrInvalidState
	}

	// 2. Mint the token; persist only its fingerprint.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return MintedInvite{}, err
	}

	inv := domain.LeaseInvite{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		LeaseID:   lease.ID,
		LeaseType: lease.Type,
		CreatedBy: landlordID,
		ExpiresAt: time.Now().UTC().Add(domain.InviteTTL),
	}
	if err := s.Store.Invites().CreateInvite(ctx, inv); err != nil {
		log.Error("failed to store invite", slog.Any("error", err))
		return MintedInvite{}, err
	}

	log.Info("signing invite created",
		slog.String("invite_id", inv.ID),
		slog.String("lease_id", lease.ID),
	)

	if s.Notifier != nil {
		go func() {
			nctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := s.Notifier.Send(nctx, notify.Notification{
				Event:     notify.EventLeaseInviteCreated,
				Recipient: landlordID,
				Data:      map[string]string{"lease_id": lease.ID},
			})
			if err != nil {
				slog.Warn("notification dispatch failed",
					slog.String("event", notify.EventLeaseInviteCreated),
					slog.Any("error", err),
				)
			}
		}()
	}

	return MintedInvite{
		Invite:   inv,
		Token:    token,
		ShareURL: s.PublicBaseURL + "/sign/" + token,
	}, nil
}

// Resolve looks up an invite by its raw token for the public signing page.
// Unknown tokens and expired tokens are distinguishable so the page can tell
// the signer to request a fresh link.
func (s *InviteService) Resolve(ctx context.Context, token string) (InviteView, error) {
	inv, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return InviteView{}, ErrNotFound
		}
		return InviteView{}, err
	}
	if inv.ExpiredAt(time.Now().UTC()) {
		return InviteView{}, ErrInviteExpired
	}
	if inv.Signed {
		return InviteView{}, ErrInviteAlreadySigned
	}

	lease, err := s.Store.Leases().GetLease(ctx, domain.LeaseRef{ID: inv.LeaseID, Type: inv.LeaseType})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return InviteView{}, ErrNotFound
		}
		return InviteView{}, err
	}

	view := InviteView{
		InviteID:      inv.ID,
		LeaseType:     lease.Type,
		StartDate:     lease.StartDate,
		EndDate:       lease.EndDate,
		RentAmount:    lease.RentAmount,
		DepositAmount: lease.DepositAmount,
		DocumentURL:   lease.DocumentURL,
		ExpiresAt:     inv.ExpiresAt,
	}
	if lease.Snapshot != nil {
		view.Property = lease.Snapshot.PropertyAddress
		view.LandlordName = lease.Snapshot.LandlordName
	}
	return view, nil
}
