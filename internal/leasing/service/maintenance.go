package service

import (
	"context"
	"errors"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/store"
	"github.com/havenlet/leasing/pkg/idx"
)

// MaintenanceService records maintenance work on listings so it can be
// invoiced.
type MaintenanceService struct {
	Store store.Store
}

type MaintenanceInput struct {
	ListingID   string
	Title       string
	Description string
}

func (s *MaintenanceService) Create(ctx context.Context, landlordID string, in MaintenanceInput) (domain.MaintenanceRequest, error) {
	if in.Title == "" {
		return domain.MaintenanceRequest{}, ErrInvalidRequest
	}

	listing, err := s.Store.Listings().GetListingByID(ctx, in.ListingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MaintenanceRequest{}, ErrNotFound
		}
		return domain.MaintenanceRequest{}, err
	}
	if listing.LandlordID != landlordID {
		return domain.MaintenanceRequest{}, ErrForbidden
	}

	mr := domain.MaintenanceRequest{
		ID:          idx.New().String(),
		ListingID:   listing.ID,
		LandlordID:  landlordID,
		Title:       in.Title,
		Description: in.Description,
		Status:      domain.MaintenanceOpen,
	}
	if err := s.Store.Maintenance().CreateMaintenanceRequest(ctx, mr); err != nil {
		return domain.MaintenanceRequest{}, err
	}
	return s.Store.Maintenance().GetMaintenanceRequestByID(ctx, mr.ID)
}

func (s *MaintenanceService) Get(ctx context.Context, id, landlordID string) (domain.MaintenanceRequest, error) {
	mr, err := s.Store.Maintenance().GetMaintenanceRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MaintenanceRequest{}, ErrNotFound
		}
		return domain.MaintenanceRequest{}, err
	}
	if mr.LandlordID != landlordID {
		return domain.MaintenanceRequest{}, ErrForbidden
	}
	return mr, nil
}

func (s *MaintenanceService) List(ctx context.Context, landlordID string) ([]domain.MaintenanceRequest, error) {
	return s.Store.Maintenance().ListMaintenanceByLandlord(ctx, landlordID)
}
