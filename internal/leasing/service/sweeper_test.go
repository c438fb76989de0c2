package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/pkg/cryptox"
	"github.com/havenlet/leasing/pkg/idx"
)

func TestSweepExpiresAndPrunes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)

	// An active lease whose term is over.
	start := time.Now().UTC().AddDate(-2, 0, 0)
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

	// A stale unsigned invite and a signed one that must be kept.
	draft := seedDraftLease(t, st, landlord, seedListing(t, st, landlord.ID))
	staleHash := cryptox.FingerprintToken("stale-token")
	require.NoError(t, st.Invites().CreateInvite(ctx, domain.LeaseInvite{
		ID:        idx.New().String(),
		TokenHash: staleHash,
		LeaseID:   draft.ID,
		LeaseType: draft.Type,
		CreatedBy: landlord.ID,
		ExpiresAt: time.Now().UTC().Add(-48 * time.Hour),
	}))

	signedHash := cryptox.FingerprintToken("signed-token")
	signedInvite := domain.LeaseInvite{
		ID:        idx.New().String(),
		TokenHash: signedHash,
		LeaseID:   draft.ID,
		LeaseType: draft.Type,
		CreatedBy: landlord.ID,
		ExpiresAt: time.Now().UTC().Add(-48 * time.Hour),
	}
	require.NoError(t, st.Invites().CreateInvite(ctx, signedInvite))
	n, err := st.Invites().MarkInviteSigned(ctx, signedInvite.ID, tenant.ID, time.Now().UTC())
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sweeper := NewSweeperService(st, logger, time.Hour)
	sweeper.Start()
	sweeper.Stop()

	got, err := st.Leases().GetLease(ctx, overdue.Ref())
	require.NoError(t, err)
	require.Equal(t, domain.LeaseExpired, got.Status)

	_, err = st.Invites().GetInviteByTokenHash(ctx, staleHash)
	require.Error(t, err, "expired unsigned invites are pruned")

	_, err = st.Invites().GetInviteByTokenHash(ctx, signedHash)
	require.NoError(t, err, "signed invites are kept as an audit trail")
}
