package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/store/drivers/sqlite"
	"github.com/havenlet/leasing/pkg/idx"
)

// newTestStore opens a fresh file-backed database per test. A file (rather
// than :memory:) keeps the schema visible across the connection pool.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "leasing.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st *sqlite.Store, role domain.Role, name, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:    idx.New().String(),
		Name:  name,
		Email: email,
		Phone: "0400000000",
		Role:  role,
	}
	require.NoError(t, st.Users().UpsertUser(context.Background(), u))
	return u
}

func seedListing(t *testing.T, st *sqlite.Store, landlordID string) domain.Listing {
	t.Helper()

	l := domain.Listing{
		ID:            idx.New().String(),
		LandlordID:    landlordID,
		Title:         "Two bedroom terrace",
		Address:       "14 Wattle St",
		City:          "Newcastle",
		State:         "NSW",
		PostalCode:    "2300",
		Bedrooms:      2,
		Bathrooms:     1,
		RentAmount:    185000,
		DepositAmount: 370000,
		Status:        domain.ListingActive,
	}
	require.NoError(t, st.Listings().CreateListing(context.Background(), l))
	return l
}

// seedDraftLease writes a standard DRAFT lease directly, bypassing the
// application flow, with a one year term starting now.
func seedDraftLease(t *testing.T, st *sqlite.Store, landlord domain.User, listing domain.Listing) domain.Lease {
	t.Helper()

	start := time.Now().UTC()
	l := domain.Lease{
		ID:            idx.New().String(),
		Type:          domain.LeaseStandard,
		LandlordID:    landlord.ID,
		ListingID:     listing.ID,
		Status:        domain.LeaseDraft,
		StartDate:     start,
		EndDate:       start.AddDate(1, 0, 0),
		RentAmount:    listing.RentAmount,
		DepositAmount: listing.DepositAmount,
		Snapshot: &domain.LeaseSnapshot{
			LandlordName:    landlord.Name,
			LandlordEmail:   landlord.Email,
			LandlordPhone:   landlord.Phone,
			PropertyAddress: listing.Address,
			PropertyCity:    listing.City,
			PropertyState:   listing.State,
			PropertyPostal:  listing.PostalCode,
		},
	}
	require.NoError(t, st.Leases().CreateLease(context.Background(), l))
	return l
}

// seedActiveLease seeds a lease already occupied by the given tenant.
func seedActiveLease(t *testing.T, st *sqlite.Store, landlord domain.User, listing domain.Listing, tenantID string) domain.Lease {
	t.Helper()

	lease := seedDraftLease(t, st, landlord, listing)
	n, err := st.Leases().ActivateLease(context.Background(), lease.Ref(), tenantID, time.Now().UTC())
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	activated, err := st.Leases().GetLease(context.Background(), lease.Ref())
	require.NoError(t, err)
	return activated
}
