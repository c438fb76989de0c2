package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havenlet/leasing/internal/leasing/domain"
)

func TestListingLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")

	svc := &ListingService{Store: st}

	created, err := svc.Create(ctx, landlord.ID, ListingInput{
		Title:         "Two bedroom terrace",
		Address:       "14 Wattle St",
		City:          "Newcastle",
		State:         "NSW",
		PostalCode:    "2300",
		Bedrooms:      2,
		Bathrooms:     1,
		RentAmount:    185000,
		DepositAmount: 370000,
	})
	require.NoError(t, err)
	require.Equal(t, domain.ListingActive, created.Status)

	updated, err := svc.Update(ctx, created.ID, landlord.ID, ListingInput{
		Title:      "Two bedroom terrace, renovated",
		Address:    "14 Wattle St",
		City:       "Newcastle",
		State:      "NSW",
		PostalCode: "2300",
		Bedrooms:   2,
		Bathrooms:  2,
		RentAmount: 195000,
	})
	require.NoError(t, err)
	require.Equal(t, "Two bedroom terrace, renovated", updated.Title)
	require.EqualValues(t, 195000, updated.RentAmount)

	require.NoError(t, svc.Delete(ctx, created.ID, landlord.ID))
	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateListingValidation(t *testing.T) {
	st := newTestStore(t)
	svc := &ListingService{Store: st}

	_, err := svc.Create(context.Background(), "landlord", ListingInput{Title: "No address"})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDeleteRentedListingRefused(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)
	_, minted := mintInvite(t, st, landlord, listing)

	signing := &SigningService{Store: st}
	_, err := signing.Sign(ctx, minted.Token, tenant.ID)
	require.NoError(t, err)

	svc := &ListingService{Store: st}
	require.ErrorIs(t, svc.Delete(ctx, listing.ID, landlord.ID), ErrInvalidState)
}

func TestListListingsByRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")

	available := seedListing(t, st, landlord.ID)
	rented := seedListing(t, st, landlord.ID)
	require.NoError(t, st.Listings().UpdateListingStatus(ctx, rented.ID, domain.ListingRented))

	svc := &ListingService{Store: st}

	mine, err := svc.List(ctx, landlord.ID, domain.RoleLandlord)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	browsing, err := svc.List(ctx, tenant.ID, domain.RoleTenant)
	require.NoError(t, err)
	require.Len(t, browsing, 1)
	require.Equal(t, available.ID, browsing[0].ID)
}

func TestUserSync(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	svc := &UserService{Store: st}

	_, err := svc.Sync(ctx, "user-1", domain.RoleTenant, UserInput{Name: "Sam"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	u, err := svc.Sync(ctx, "user-1", domain.RoleTenant, UserInput{
		Name:  "Sam Okafor",
		Email: "sam@example.com",
		Phone: "0411111111",
	})
	require.NoError(t, err)
	require.Equal(t, "user-1", u.ID)
	require.Equal(t, domain.RoleTenant, u.Role)

	// Upsert replaces the profile, not the identity.
	u, err = svc.Sync(ctx, "user-1", domain.RoleTenant, UserInput{
		Name:  "Sam Okafor",
		Email: "sam.okafor@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "sam.okafor@example.com", u.Email)

	got, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, "sam.okafor@example.com", got.Email)

	_, err = svc.Get(ctx, "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
