package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/store"
	"github.com/havenlet/leasing/pkg/idx"
	"github.com/havenlet/leasing/pkg/slogx"
)

// LeaseService owns the lease lifecycle for both variants: draft, activate
// (via signing), terminate, expire.
type LeaseService struct {
	Store store.Store
}

type LeaseInput struct {
	ListingID     string
	Type          domain.LeaseType
	StartDate     time.Time
	EndDate       time.Time
	RentAmount    int64
	DepositAmount int64
	DocumentURL   string // custom leases only
}

// Create drafts a lease directly, outside the application flow. Standard
// leases capture their document snapshot from the listing and landlord at
// creation time; custom leases reference an already uploaded document.
func (s *LeaseService) Create(ctx context.Context, landlordID string, in LeaseInput) (domain.Lease, error) {
	log := slogx.FromContext(ctx)

	switch in.Type {
	case domain.LeaseStandard, domain.LeaseCustom:
	default:
		return domain.Lease{}, ErrInvalidRequest
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() || !in.EndDate.After(in.StartDate) {
		return domain.Lease{}, ErrInvalidRequest
	}
	if in.RentAmount <= 0 {
		return domain.Lease{}, ErrInvalidRequest
	}
	if in.Type == domain.LeaseCustom && in.DocumentURL == "" {
		return domain.Lease{}, ErrInvalidRequest
	}

	listing, err := s.Store.Listings().GetListingByID(ctx, in.ListingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Lease{}, ErrNotFound
		}
		log.Error("failed to fetch listing", slog.Any("error", err))
		return domain.Lease{}, err
	}
	if listing.LandlordID != landlordID {
		return domain.Lease{}, ErrForbidden
	}

	lease := domain.Lease{
		ID:            idx.New().String(),
		Type:          in.Type,
		LandlordID:    landlordID,
		ListingID:     listing.ID,
		Status:        domain.LeaseDraft,
		StartDate:     in.StartDate.UTC(),
		EndDate:       in.EndDate.UTC(),
		RentAmount:    in.RentAmount,
		DepositAmount: in.DepositAmount,
		DocumentURL:   in.DocumentURL,
	}

	if in.Type == domain.LeaseStandard {
		landlord, err := s.Store.Users().GetUserByID(ctx, landlordID)
		if err != nil {
			log.Error("failed to fetch landlord", slog.Any("error", err))
			return domain.Lease{}, err
		}
		lease.Snapshot = &domain.LeaseSnapshot{
			LandlordName:    landlord.Name,
			LandlordEmail:   landlord.Email,
			LandlordPhone:   landlord.Phone,
			PropertyAddress: listing.Address,
			PropertyCity:    listing.City,
			PropertyState:   listing.State,
			PropertyPostal:  listing.PostalCode,
		}
	}

	if err := s.Store.Leases().CreateLease(ctx, lease); err != nil {
		log.Error("failed to create lease", slog.Any("error", err))
		return domain.Lease{}, err
	}

	log.Debug("lease drafted",
		slog.String("lease_id", lease.ID),
		slog.String("lease_type", string(lease.Type)),
		slog.String("listing_id", listing.ID),
	)
	return s.Store.Leases().GetLease(ctx, lease.Ref())
}

// Get returns one lease, visible only to its landlord or (once signed) its
// tenant. Overdue leases are expired first so the caller never sees a stale
// ACTIVE status.
func (s *LeaseService) Get(ctx context.Context, ref domain.LeaseRef, viewerID string, role domain.Role) (domain.Lease, error) {
	if err := s.expireOverdue(ctx); err != nil {
		return domain.Lease{}, err
	}

	lease, err := s.Store.Leases().GetLease(ctx, ref)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Lease{}, ErrNotFound
		}
		return domain.Lease{}, err
	}
	if lease.LandlordID != viewerID && lease.TenantID != viewerID {
		return domain.Lease{}, ErrForbidden
	}
	return lease, nil
}

// List returns the viewer's leases: everything on their properties for a
// landlord, everything they signed for a tenant.
func (s *LeaseService) List(ctx context.Context, viewerID string, role domain.Role) ([]domain.Lease, error) {
	if err := s.expireOverdue(ctx); err != nil {
		return nil, err
	}

	if role == domain.RoleLandlord {
		return s.Store.Leases().ListLeasesByLandlord(ctx, viewerID)
	}
	return s.Store.Leases().ListLeasesByTenant(ctx, viewerID)
}

// Update changes the terms of a DRAFT lease. Signed leases are immutable;
// changes after activation go through termination and a new lease.
func (s *LeaseService) Update(ctx context.Context, ref domain.LeaseRef, landlordID string, in LeaseInput) (domain.Lease, error) {
	lease, err := s.ownedLease(ctx, ref, landlordID)
	if err != nil {
		return domain.Lease{}, err
	}
	if lease.Status != domain.LeaseDraft {
		return domain.Lease{}, ErrInvalidState
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() || !in.EndDate.After(in.StartDate) {
		return domain.Lease{}, ErrInvalidRequest
	}
	if in.RentAmount <= 0 {
		return domain.Lease{}, ErrInvalidRequest
	}

	lease.StartDate = in.StartDate.UTC()
	lease.EndDate = in.EndDate.UTC()
	lease.RentAmount = in.RentAmount
	lease.DepositAmount = in.DepositAmount
	if lease.Type == domain.LeaseCustom && in.DocumentURL != "" {
		lease.DocumentURL = in.DocumentURL
	}

	if err := s.Store.Leases().UpdateLeaseTerms(ctx, lease); err != nil {
		slogx.FromContext(ctx).Error("failed to update lease terms", slog.Any("error", err))
		return domain.Lease{}, err
	}
	return s.Store.Leases().GetLease(ctx, ref)
}

// Terminate ends an ACTIVE lease early and logs who ended it and why. The
// listing keeps its RENTED status; relisting is an explicit landlord action.
func (s *LeaseService) Terminate(ctx context.Context, ref domain.LeaseRef, landlordID string, date time.Time, reason, notes string) (domain.Lease, error) {
	log := slogx.FromContext(ctx)

	if err := s.expireOverdue(ctx); err != nil {
		return domain.Lease{}, err
	}

	lease, err := s.ownedLease(ctx, ref, landlordID)
	if err != nil {
		return domain.Lease{}, err
	}
	if lease.Status != domain.LeaseActive {
		return domain.Lease{}, ErrInvalidState
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	if err := s.Store.Leases().TerminateLease(ctx, ref, date.UTC(), reason, notes, landlordID); err != nil {
		log.Error("failed to terminate lease", slog.Any("error", err))
		return domain.Lease{}, err
	}

	log.Info("lease terminated",
		slog.String("lease_id", lease.ID),
		slog.String("reason", reason),
	)
	return s.Store.Leases().GetLease(ctx, ref)
}

// Delete removes a lease that never took effect. ACTIVE leases must be
// terminated instead so the record of the tenancy survives.
func (s *LeaseService) Delete(ctx context.Context, ref domain.LeaseRef, landlordID string) error {
	lease, err := s.ownedLease(ctx, ref, landlordID)
	if err != nil {
		return err
	}
	if lease.Status == domain.LeaseActive {
		return ErrInvalidState
	}
	return s.Store.Leases().DeleteLease(ctx, ref)
}

func (s *LeaseService) ownedLease(ctx context.Context, ref domain.LeaseRef, landlordID string) (domain.Lease, error) {
	lease, err := s.Store.Leases().GetLease(ctx, ref)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Lease{}, ErrNotFound
		}
		return domain.Lease{}, err
	}
	if lease.LandlordID != landlordID {
		return domain.Lease{}, ErrForbidden
	}
	return lease, nil
}

func (s *LeaseService) expireOverdue(ctx context.Context) error {
	if err := s.Store.Leases().ExpireOverdue(ctx, time.Now().UTC()); err != nil {
		slogx.FromContext(ctx).Error("failed to expire overdue leases", slog.Any("error", err))
		return err
	}
	return nil
}
