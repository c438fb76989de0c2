package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/store/drivers/sqlite"
	"github.com/havenlet/leasing/pkg/cryptox"
	"github.com/havenlet/leasing/pkg/idx"
)

// mintInvite drafts a lease on the listing and mints a signing invite for it.
func mintInvite(t *testing.T, st *sqlite.Store, landlord domain.User, listing domain.Listing) (domain.Lease, MintedInvite) {
	t.Helper()

	lease := seedDraftLease(t, st, landlord, listing)

	invites := &InviteService{Store: st, PublicBaseURL: "https://leasing.example"}
	minted, err := invites.Generate(context.Background(), lease.Ref(), landlord.ID)
	require.NoError(t, err)
	return lease, minted
}

func TestSignActivatesLease(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)
	lease, minted := mintInvite(t, st, landlord, listing)

	svc := &SigningService{Store: st}

	signed, err := svc.Sign(ctx, minted.Token, tenant.ID)
	require.NoError(t, err)

	require.Equal(t, lease.ID, signed.ID)
	require.Equal(t, domain.LeaseActive, signed.Status)
	require.Equal(t, tenant.ID, signed.TenantID)

	// The listing is now occupied.
	gotListing, err := st.Listings().GetListingByID(ctx, listing.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ListingRented, gotListing.Status)

	// The invite is spent and bound to the signer.
	inv, err := st.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(minted.Token))
	require.NoError(t, err)
	require.True(t, inv.Signed)
	require.Equal(t, tenant.ID, inv.TenantID)
	require.NotNil(t, inv.SignedAt)
}

func TestSignInviteIsSingleUse(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	first := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	second := seedUser(t, st, domain.RoleTenant, "Priya Nair", "priya@example.com")
	listing := seedListing(t, st, landlord.ID)
	lease, minted := mintInvite(t, st, landlord, listing)

	svc := &SigningService{Store: st}

	_, err := svc.Sign(ctx, minted.Token, first.ID)
	require.NoError(t, err)

	_, err = svc.Sign(ctx, minted.Token, second.ID)
	require.ErrorIs(t, err, ErrInviteAlreadySigned)

	// The first signer keeps the lease.
	got, err := st.Leases().GetLease(ctx, lease.Ref())
	require.NoError(t, err)
	require.Equal(t, first.ID, got.TenantID)
}

func TestSignExpiredInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)
	lease := seedDraftLease(t, st, landlord, listing)

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.NoError(t, st.Invites().CreateInvite(ctx, domain.LeaseInvite{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		LeaseID:   lease.ID,
		LeaseType: lease.Type,
		CreatedBy: landlord.ID,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}))

	svc := &SigningService{Store: st}

	_, err = svc.Sign(ctx, token, tenant.ID)
	require.ErrorIs(t, err, ErrInviteExpired)

	// Nothing moved.
	got, err := st.Leases().GetLease(ctx, lease.Ref())
	require.NoError(t, err)
	require.Equal(t, domain.LeaseDraft, got.Status)
	require.Empty(t, got.TenantID)
}

func TestSignUnknownToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")

	svc := &SigningService{Store: st}

	_, err := svc.Sign(ctx, "not-a-real-token", tenant.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSignUnknownTenant(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)
	_, minted := mintInvite(t, st, landlord, listing)

	svc := &SigningService{Store: st}

	_, err := svc.Sign(ctx, minted.Token, "no-such-user")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSignRefusedWhileTenantHoldsActiveLease(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")

	occupied := seedListing(t, st, landlord.ID)
	existing := seedActiveLease(t, st, landlord, occupied, tenant.ID)

	vacant := seedListing(t, st, landlord.ID)
	second, minted := mintInvite(t, st, landlord, vacant)

	svc := &SigningService{Store: st}

	_, err := svc.Sign(ctx, minted.Token, tenant.ID)

	var activeErr *ActiveLeaseError
	require.ErrorAs(t, err, &activeErr)
	require.Equal(t, existing.ID, activeErr.ExistingLeaseID)
	require.Equal(t, existing.Type, activeErr.ExistingLeaseType)

	// The second lease stays a draft and its invite stays redeemable.
	got, err := st.Leases().GetLease(ctx, second.Ref())
	require.NoError(t, err)
	require.Equal(t, domain.LeaseDraft, got.Status)

	inv, err := st.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(minted.Token))
	require.NoError(t, err)
	require.False(t, inv.Signed)
}

func TestFormatCents(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1850.00", formatCents(185000))
	require.Equal(t, "0.05", formatCents(5))
	require.Equal(t, "12.30", formatCents(1230))
}
