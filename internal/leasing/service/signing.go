package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/havenlet/leasing/internal/leasing/contract"
	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/notify"
	"github.com/havenlet/leasing/internal/leasing/store"
	"github.com/havenlet/leasing/pkg/cryptox"
	"github.com/havenlet/leasing/pkg/slogx"
)

// SigningService redeems signing invites. Sign is the one place a lease
// transitions DRAFT to ACTIVE, a tenant gets bound, and a listing flips to
// RENTED; all three happen in a single transaction guarded against
// concurrent redemption.
type SigningService struct {
	Store    store.Store
	Renderer contract.Renderer
	Notifier notify.Notifier
}

// Sign redeems the invite token on behalf of the authenticated tenant. The
// token is single-use: a concurrent second redemption loses at the database
// and gets ErrInviteAlreadySigned. A tenant who already holds an active
// lease anywhere gets an ActiveLeaseError and nothing changes.
func (s *SigningService) Sign(ctx context.Context, token, tenantID string) (domain.Lease, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	// 1. Resolve the invite by fingerprint.
	inv, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Lease{}, ErrNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return domain.Lease{}, err
	}
	if inv.ExpiredAt(now) {
		log.Warn("signing attempted with expired invite", slog.String("invite_id", inv.ID))
		return domain.Lease{}, ErrInviteExpired
	}
	if inv.Signed {
		return domain.Lease{}, ErrInviteAlreadySigned
	}

	// 2. The signer must be a known tenant account.
	tenant, err := s.Store.Users().GetUserByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Lease{}, ErrNotFound
		}
		log.Error("failed to fetch tenant", slog.Any("error", err))
		return domain.Lease{}, err
	}

	// 3. One active lease per tenant, across both variants.
	if existing, err := s.Store.Leases().FindActiveLeaseByTenant(ctx, tenantID, now); err == nil {
		log.Warn("signing refused, tenant already holds an active lease",
			slog.String("tenant_id", tenantID),
			slog.String("existing_lease_id", existing.ID),
		)
		return domain.Lease{}, &ActiveLeaseError{
			ExistingLeaseID:   existing.ID,
			ExistingLeaseType: existing.Type,
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check for existing active lease", slog.Any("error", err))
		return domain.Lease{}, err
	}

	ref := domain.LeaseRef{ID: inv.LeaseID, Type: inv.LeaseType}
	lease, err := s.Store.Leases().GetLease(ctx, ref)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Lease{}, ErrNotFound
		}
		log.Error("failed to fetch lease", slog.Any("error", err))
		return domain.Lease{}, err
	}
	if lease.Status != domain.LeaseDraft {
		return domain.Lease{}, ErrInvalidState
	}

	// 4. Redeem atomically. Both UPDATEs are conditional; zero rows means a
	// concurrent actor got there first and the whole transaction rolls back.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Invites().MarkInviteSigned(ctx, inv.ID, tenantID, now)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrInviteAlreadySigned
		}

		m, err := tx.Leases().ActivateLease(ctx, ref, tenantID, now)
		if err != nil {
			return err
		}
		if m == 0 {
			return ErrInvalidState
		}

		return tx.Listings().UpdateListingStatus(ctx, lease.ListingID, domain.ListingRented)
	})
	if err != nil {
		if errors.Is(err, ErrInviteAlreadySigned) || errors.Is(err, ErrInvalidState) {
			return domain.Lease{}, err
		}
		log.Error("failed to redeem invite", slog.Any("error", err))
		return domain.Lease{}, err
	}

	log.Info("lease signed",
		slog.String("lease_id", lease.ID),
		slog.String("lease_type", string(lease.Type)),
		slog.String("tenant_id", tenantID),
	)

	signed, err := s.Store.Leases().GetLease(ctx, ref)
	if err != nil {
		return domain.Lease{}, err
	}

	// 5. Render the contract document after commit, off the request path.
	// Failures only log; the lease is already active and the document can be
	// regenerated.
	if signed.Type == domain.LeaseStandard && signed.DocumentURL == "" && s.Renderer != nil {
		go s.renderAndStoreContract(signed, tenant)
	}

	// 6. Tell both parties.
	s.notifySigned(signed)

	return signed, nil
}

func (s *SigningService) renderAndStoreContract(lease domain.Lease, tenant domain.User) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	snap := lease.Snapshot
	if snap == nil {
		return
	}

	fields := map[string]string{
		"landlord_name":    snap.LandlordName,
		"landlord_email":   snap.LandlordEmail,
		"landlord_phone":   snap.LandlordPhone,
		"tenant_name":      tenant.Name,
		"tenant_email":     tenant.Email,
		"tenant_phone":     tenant.Phone,
		"property_address": snap.PropertyAddress,
		"property_city":    snap.PropertyCity,
		"property_state":   snap.PropertyState,
		"property_postal":  snap.PropertyPostal,
		"start_date":       lease.StartDate.Format("2006-01-02"),
		"end_date":         lease.EndDate.Format("2006-01-02"),
		"rent_amount":      formatCents(lease.RentAmount),
		"deposit_amount":   formatCents(lease.DepositAmount),
	}

	url, err := s.Renderer.Render(ctx, fields)
	if err != nil {
		slog.Warn("contract rendering failed",
			slog.String("lease_id", lease.ID),
			slog.Any("error", err),
		)
		return
	}
	if err := s.Store.Leases().SetDocumentURL(ctx, lease.Ref(), url); err != nil {
		slog.Warn("failed to store contract document URL",
			slog.String("lease_id", lease.ID),
			slog.Any("error", err),
		)
	}
}

func (s *SigningService) notifySigned(lease domain.Lease) {
	if s.Notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, recipient := range []string{lease.LandlordID, lease.TenantID} {
			err := s.Notifier.Send(ctx, notify.Notification{
				Event:     notify.EventLeaseSigned,
				Recipient: recipient,
				Data:      map[string]string{"lease_id": lease.ID},
			})
			if err != nil {
				slog.Warn("notification dispatch failed",
					slog.String("event", notify.EventLeaseSigned),
					slog.Any("error", err),
				)
			}
		}
	}()
}

// formatCents renders an integer cent amount as a dollar string for the
// contract template, e.g. 185000 -> "1850.00".
func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
