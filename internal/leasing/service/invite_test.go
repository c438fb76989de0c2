package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/pkg/cryptox"
)

func TestGenerateInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)
	lease := seedDraftLease(t, st, landlord, listing)

	svc := &InviteService{Store: st, PublicBaseURL: "https://leasing.example"}

	minted, err := svc.Generate(ctx, lease.Ref(), landlord.ID)
	require.NoError(t, err)

	require.NotEmpty(t, minted.Token)
	require.Equal(t, "https://leasing.example/sign/"+minted.Token, minted.ShareURL)
	require.Equal(t, lease.ID, minted.Invite.LeaseID)
	require.Equal(t, lease.Type, minted.Invite.LeaseType)
	require.WithinDuration(t, time.Now().UTC().Add(domain.InviteTTL), minted.Invite.ExpiresAt, time.Minute)

	// Only the fingerprint hits the database.
	stored, err := st.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(minted.Token))
	require.NoError(t, err)
	require.Equal(t, minted.Invite.ID, stored.ID)
	require.NotEqual(t, minted.Token, stored.TokenHash)

	_, err = st.Invites().GetInviteByTokenHash(ctx, minted.Token)
	require.Error(t, err, "raw token must never be stored")
}

func TestGenerateInviteRequiresDraft(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)
	active := seedActiveLease(t, st, landlord, listing, tenant.ID)

	svc := &InviteService{Store: st, PublicBaseURL: "https://leasing.example"}

	_, err := svc.Generate(ctx, active.Ref(), landlord.ID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestGenerateInviteOwnerOnly(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	other := seedUser(t, st, domain.RoleLandlord, "Other", "other@example.com")
	listing := seedListing(t, st, landlord.ID)
	lease := seedDraftLease(t, st, landlord, listing)

	svc := &InviteService{Store: st, PublicBaseURL: "https://leasing.example"}

	_, err := svc.Generate(ctx, lease.Ref(), other.ID)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestGenerateProducesFreshTokens(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)
	lease := seedDraftLease(t, st, landlord, listing)

	svc := &InviteService{Store: st, PublicBaseURL: "https://leasing.example"}

	first, err := svc.Generate(ctx, lease.Ref(), landlord.ID)
	require.NoError(t, err)
	second, err := svc.Generate(ctx, lease.Ref(), landlord.ID)
	require.NoError(t, err)

	require.NotEqual(t, first.Token, second.Token)
}

func TestResolveInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)
	lease := seedDraftLease(t, st, landlord, listing)

	svc := &InviteService{Store: st, PublicBaseURL: "https://leasing.example"}

	minted, err := svc.Generate(ctx, lease.Ref(), landlord.ID)
	require.NoError(t, err)

	view, err := svc.Resolve(ctx, minted.Token)
	require.NoError(t, err)

	require.Equal(t, minted.Invite.ID, view.InviteID)
	require.Equal(t, lease.Type, view.LeaseType)
	require.Equal(t, lease.RentAmount, view.RentAmount)
	require.Equal(t, lease.DepositAmount, view.DepositAmount)
	require.Equal(t, listing.Address, view.Property)
	require.Equal(t, landlord.Name, view.LandlordName)
}

func TestResolveUnknownToken(t *testing.T) {
	st := newTestStore(t)

	svc := &InviteService{Store: st}

	_, err := svc.Resolve(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResolveSignedInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)
	_, minted := mintInvite(t, st, landlord, listing)

	signing := &SigningService{Store: st}
	_, err := signing.Sign(ctx, minted.Token, tenant.ID)
	require.NoError(t, err)

	invites := &InviteService{Store: st}
	_, err = invites.Resolve(ctx, minted.Token)
	require.ErrorIs(t, err, ErrInviteAlreadySigned)
}
