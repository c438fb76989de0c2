package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/store"
	"github.com/havenlet/leasing/pkg/idx"
	"github.com/havenlet/leasing/pkg/slogx"
)

type ListingService struct {
	Store store.Store
}

type ListingInput struct {
	Title         string
	Address       string
	City          string
	State         string
	PostalCode    string
	Bedrooms      int
	Bathrooms     int
	RentAmount    int64
	DepositAmount int64
}

func (s *ListingService) Create(ctx context.Context, landlordID string, in ListingInput) (domain.Listing, error) {
	log := slogx.FromContext(ctx)

	if in.Title == "" || in.Address == "" {
		return domain.Listing{}, ErrInvalidRequest
	}

	l := domain.Listing{
		ID:            idx.New().String(),
		LandlordID:    landlordID,
		Title:         in.Title,
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		PostalCode:    in.PostalCode,
		Bedrooms:      in.Bedrooms,
		Bathrooms:     in.Bathrooms,
		RentAmount:    in.RentAmount,
		DepositAmount: in.DepositAmount,
		Status:        domain.ListingActive,
	}

	if err := s.Store.Listings().CreateListing(ctx, l); err != nil {
		log.Error("failed to create listing", slog.Any("error", err))
		return domain.Listing{}, err
	}

	log.Debug("listing created",
		slog.String("listing_id", l.ID),
		slog.String("landlord_id", landlordID),
	)
	return s.Store.Listings().GetListingByID(ctx, l.ID)
}

func (s *ListingService) Get(ctx context.Context, id string) (domain.Listing, error) {
	l, err := s.Store.Listings().GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Listing{}, ErrNotFound
		}
		return domain.Listing{}, err
	}
	return l, nil
}

// List returns the landlord's own listings, or all available listings for
// any other caller.
func (s *ListingService) List(ctx context.Context, viewerID string, role domain.Role) ([]domain.Listing, error) {
	if role == domain.RoleLandlord {
		return s.Store.Listings().ListListingsByLandlord(ctx, viewerID)
	}
	return s.Store.Listings().ListAvailableListings(ctx)
}

func (s *ListingService) Update(ctx context.Context, id, landlordID string, in ListingInput) (domain.Listing, error) {
	l, err := s.ownedListing(ctx, id, landlordID)
	if err != nil {
		return domain.Listing{}, err
	}

	l.Title = in.Title
	l.Address = in.Address
	l.City = in.City
	l.State = in.State
	l.PostalCode = in.PostalCode
	l.Bedrooms = in.Bedrooms
	l.Bathrooms = in.Bathrooms
	l.RentAmount = in.RentAmount
	l.DepositAmount = in.DepositAmount

	if err := s.Store.Listings().UpdateListing(ctx, l); err != nil {
		return domain.Listing{}, err
	}
	return s.Store.Listings().GetListingByID(ctx, id)
}

func (s *ListingService) Delete(ctx context.Context, id, landlordID string) error {
	l, err := s.ownedListing(ctx, id, landlordID)
	if err != nil {
		return err
	}

	// An occupied property cannot be removed; terminate the lease first.
	if l.Status == domain.ListingRented {
		return ErrInvalidState
	}

	return s.Store.Listings().DeleteListing(ctx, id)
}

func (s *ListingService) ownedListing(ctx context.Context, id, landlordID string) (domain.Listing, error) {
	l, err := s.Store.Listings().GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Listing{}, ErrNotFound
		}
		return domain.Listing{}, err
	}
	if l.LandlordID != landlordID {
		return domain.Listing{}, ErrForbidden
	}
	return l, nil
}
