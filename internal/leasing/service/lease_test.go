package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/pkg/idx"
)

func TestCreateLeaseValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &LeaseService{Store: st}

	start := time.Now().UTC()
	end := start.AddDate(1, 0, 0)

	t.Run("unknown type", func(t *testing.T) {
		_, err := svc.Create(ctx, landlord.ID, LeaseInput{
			ListingID: listing.ID, Type: "verbal", StartDate: start, EndDate: end, RentAmount: 100000,
		})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := svc.Create(ctx, landlord.ID, LeaseInput{
			ListingID: listing.ID, Type: domain.LeaseStandard, StartDate: end, EndDate: start, RentAmount: 100000,
		})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("non-positive rent", func(t *testing.T) {
		_, err := svc.Create(ctx, landlord.ID, LeaseInput{
			ListingID: listing.ID, Type: domain.LeaseStandard, StartDate: start, EndDate: end, RentAmount: 0,
		})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("custom without document", func(t *testing.T) {
		_, err := svc.Create(ctx, landlord.ID, LeaseInput{
			ListingID: listing.ID, Type: domain.LeaseCustom, StartDate: start, EndDate: end, RentAmount: 100000,
		})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestCreateStandardLeaseCapturesSnapshot(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &LeaseService{Store: st}

	start := time.Now().UTC()
	lease, err := svc.Create(ctx, landlord.ID, LeaseInput{
		ListingID:     listing.ID,
		Type:          domain.LeaseStandard,
		StartDate:     start,
		EndDate:       start.AddDate(1, 0, 0),
		RentAmount:    185000,
		DepositAmount: 370000,
	})
	require.NoError(t, err)

	require.Equal(t, domain.LeaseDraft, lease.Status)
	require.NotNil(t, lease.Snapshot)
	require.Equal(t, landlord.Name, lease.Snapshot.LandlordName)
	require.Equal(t, listing.Address, lease.Snapshot.PropertyAddress)
	require.Empty(t, lease.Snapshot.TenantName, "tenant details are captured at approval, not drafting")
}

func TestCreateCustomLease(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &LeaseService{Store: st}

	start := time.Now().UTC()
	lease, err := svc.Create(ctx, landlord.ID, LeaseInput{
		ListingID:   listing.ID,
		Type:        domain.LeaseCustom,
		StartDate:   start,
		EndDate:     start.AddDate(0, 6, 0),
		RentAmount:  120000,
		DocumentURL: "https://blobs.example/agreements/abc.pdf",
	})
	require.NoError(t, err)

	require.Equal(t, domain.LeaseCustom, lease.Type)
	require.Equal(t, "https://blobs.example/agreements/abc.pdf", lease.DocumentURL)
	require.Nil(t, lease.Snapshot)

	// Both variants show up in the landlord's list.
	leases, err := svc.List(ctx, landlord.ID, domain.RoleLandlord)
	require.NoError(t, err)
	require.Len(t, leases, 1)
}

func TestUpdateLeaseDraftOnly(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &LeaseService{Store: st}

	draft := seedDraftLease(t, st, landlord, listing)
	newStart := time.Now().UTC().AddDate(0, 0, 14)
	updated, err := svc.Update(ctx, draft.Ref(), landlord.ID, LeaseInput{
		StartDate:     newStart,
		EndDate:       newStart.AddDate(1, 0, 0),
		RentAmount:    190000,
		DepositAmount: 380000,
	})
	require.NoError(t, err)
	require.EqualValues(t, 190000, updated.RentAmount)

	active := seedActiveLease(t, st, landlord, seedListing(t, st, landlord.ID), tenant.ID)
	_, err = svc.Update(ctx, active.Ref(), landlord.ID, LeaseInput{
		StartDate:  newStart,
		EndDate:    newStart.AddDate(1, 0, 0),
		RentAmount: 190000,
	})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestGetLeaseVisibility(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	stranger := seedUser(t, st, domain.RoleTenant, "Nosy Parker", "nosy@example.com")
	listing := seedListing(t, st, landlord.ID)
	lease := seedActiveLease(t, st, landlord, listing, tenant.ID)

	svc := &LeaseService{Store: st}

	_, err := svc.Get(ctx, lease.Ref(), landlord.ID, domain.RoleLandlord)
	require.NoError(t, err)

	_, err = svc.Get(ctx, lease.Ref(), tenant.ID, domain.RoleTenant)
	require.NoError(t, err)

	_, err = svc.Get(ctx, lease.Ref(), stranger.ID, domain.RoleTenant)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestOverdueLeaseReadsAsExpired(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)

	// An active lease whose term ended last month.
	start := time.Now().UTC().AddDate(-1, -1, 0)
	overdue := domain.Lease{
		ID:         idx.New().String(),
		Type:       domain.LeaseStandard,
		LandlordID: landlord.ID,
		TenantID:   tenant.ID,
		ListingID:  listing.ID,
		Status:     domain.LeaseActive,
		StartDate:  start,
		EndDate:    start.AddDate(1, 0, 0),
		RentAmount: 185000,
	}
	require.NoError(t, st.Leases().CreateLease(ctx, overdue))

	svc := &LeaseService{Store: st}

	got, err := svc.Get(ctx, overdue.Ref(), landlord.ID, domain.RoleLandlord)
	require.NoError(t, err)
	require.Equal(t, domain.LeaseExpired, got.Status)

	// And the tenant is free to sign elsewhere.
	_, err = st.Leases().FindActiveLeaseByTenant(ctx, tenant.ID, time.Now().UTC())
	require.Error(t, err)
}

func TestTerminateLease(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)
	lease := seedActiveLease(t, st, landlord, listing, tenant.ID)

	svc := &LeaseService{Store: st}

	when := time.Now().UTC().AddDate(0, 0, 30)
	terminated, err := svc.Terminate(ctx, lease.Ref(), landlord.ID, when, "sale of property", "60 days notice given")
	require.NoError(t, err)

	require.Equal(t, domain.LeaseTerminated, terminated.Status)
	require.Equal(t, "sale of property", terminated.TerminationReason)
	require.Equal(t, landlord.ID, terminated.TerminatedBy)
	require.NotNil(t, terminated.TerminationDate)

	// Terminating again is refused.
	_, err = svc.Terminate(ctx, lease.Ref(), landlord.ID, when, "again", "")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestTerminateDraftRefused(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)
	draft := seedDraftLease(t, st, landlord, listing)

	svc := &LeaseService{Store: st}

	_, err := svc.Terminate(ctx, draft.Ref(), landlord.ID, time.Time{}, "changed my mind", "")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestDeleteActiveLeaseRefused(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &LeaseService{Store: st}

	active := seedActiveLease(t, st, landlord, listing, tenant.ID)
	require.ErrorIs(t, svc.Delete(ctx, active.Ref(), landlord.ID), ErrInvalidState)

	draft := seedDraftLease(t, st, landlord, seedListing(t, st, landlord.ID))
	require.NoError(t, svc.Delete(ctx, draft.Ref(), landlord.ID))

	_, err := svc.Get(ctx, draft.Ref(), landlord.ID, domain.RoleLandlord)
	require.ErrorIs(t, err, ErrNotFound)
}
