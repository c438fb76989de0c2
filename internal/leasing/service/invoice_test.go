package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/store/drivers/sqlite"
)

// occupiedFixture is the standing setup for invoice tests: a rented listing
// with an open maintenance request.
type occupiedFixture struct {
	landlord    domain.User
	tenant      domain.User
	listing     domain.Listing
	maintenance domain.MaintenanceRequest
}

func newOccupiedFixture(t *testing.T, st *sqlite.Store) occupiedFixture {
	t.Helper()

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)
	seedActiveLease(t, st, landlord, listing, tenant.ID)

	maint := &MaintenanceService{Store: st}
	mr, err := maint.Create(context.Background(), landlord.ID, MaintenanceInput{
		ListingID:   listing.ID,
		Title:       "Hot water system failure",
		Description: "No hot water since Tuesday",
	})
	require.NoError(t, err)

	return occupiedFixture{landlord: landlord, tenant: tenant, listing: listing, maintenance: mr}
}

func TestCreateInvoiceOpensPaymentPair(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	fx := newOccupiedFixture(t, st)

	svc := &InvoiceService{Store: st}

	inv, err := svc.Create(ctx, fx.landlord.ID, InvoiceInput{
		MaintenanceRequestID: fx.maintenance.ID,
		Description:          "Replacement hot water system",
		Amount:               145000,
		SharedWithTenant:     true,
	})
	require.NoError(t, err)

	require.Equal(t, domain.InvoicePending, inv.Status)
	require.EqualValues(t, 145000, inv.Amount)
	require.NotEmpty(t, inv.PaymentID)

	p, err := st.Payments().GetPaymentByID(ctx, inv.PaymentID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentMaintenance, p.Type)
	require.Equal(t, domain.PaymentPending, p.Status)
	require.EqualValues(t, 145000, p.Amount)
	require.Equal(t, fx.tenant.ID, p.TenantID, "payment is charged to the occupying tenant")
	require.Equal(t, fx.listing.ID, p.ListingID)
	require.Nil(t, p.PaidDate)
}

func TestCreateInvoiceVacantListing(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)

	maint := &MaintenanceService{Store: st}
	mr, err := maint.Create(ctx, landlord.ID, MaintenanceInput{
		ListingID: listing.ID,
		Title:     "Broken window",
	})
	require.NoError(t, err)

	svc := &InvoiceService{Store: st}

	_, err = svc.Create(ctx, landlord.ID, InvoiceInput{
		MaintenanceRequestID: mr.ID,
		Description:          "Glazier call-out",
		Amount:               28000,
	})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestUpdateInvoiceMirrorsAmount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	fx := newOccupiedFixture(t, st)

	svc := &InvoiceService{Store: st}

	inv, err := svc.Create(ctx, fx.landlord.ID, InvoiceInput{
		MaintenanceRequestID: fx.maintenance.ID,
		Description:          "Replacement hot water system",
		Amount:               145000,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, inv.ID, fx.landlord.ID, InvoiceInput{
		Description:      "Replacement hot water system plus labour",
		Amount:           167500,
		SharedWithTenant: true,
	})
	require.NoError(t, err)
	require.EqualValues(t, 167500, updated.Amount)
	require.True(t, updated.SharedWithTenant)

	p, err := st.Payments().GetPaymentByID(ctx, inv.PaymentID)
	require.NoError(t, err)
	require.EqualValues(t, 167500, p.Amount)
}

func TestInvoiceStatusSyncsPayment(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	fx := newOccupiedFixture(t, st)

	svc := &InvoiceService{Store: st}

	inv, err := svc.Create(ctx, fx.landlord.ID, InvoiceInput{
		MaintenanceRequestID: fx.maintenance.ID,
		Description:          "Replacement hot water system",
		Amount:               145000,
	})
	require.NoError(t, err)

	t.Run("paid stamps the payment", func(t *testing.T) {
		got, err := svc.UpdateStatus(ctx, inv.ID, fx.landlord.ID, domain.InvoicePaid)
		require.NoError(t, err)
		require.Equal(t, domain.InvoicePaid, got.Status)

		p, err := st.Payments().GetPaymentByID(ctx, inv.PaymentID)
		require.NoError(t, err)
		require.Equal(t, domain.PaymentPaid, p.Status)
		require.NotNil(t, p.PaidDate)
	})

	t.Run("back to pending clears the paid date", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, inv.ID, fx.landlord.ID, domain.InvoicePending)
		require.NoError(t, err)

		p, err := st.Payments().GetPaymentByID(ctx, inv.PaymentID)
		require.NoError(t, err)
		require.Equal(t, domain.PaymentPending, p.Status)
		require.Nil(t, p.PaidDate)
	})

	t.Run("cancelled cancels the payment", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, inv.ID, fx.landlord.ID, domain.InvoiceCancelled)
		require.NoError(t, err)

		p, err := st.Payments().GetPaymentByID(ctx, inv.PaymentID)
		require.NoError(t, err)
		require.Equal(t, domain.PaymentCancelled, p.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, inv.ID, fx.landlord.ID, domain.InvoiceStatus("DISPUTED"))
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestUpdateNonPendingInvoiceRefused(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	fx := newOccupiedFixture(t, st)

	svc := &InvoiceService{Store: st}

	inv, err := svc.Create(ctx, fx.landlord.ID, InvoiceInput{
		MaintenanceRequestID: fx.maintenance.ID,
		Description:          "Replacement hot water system",
		Amount:               145000,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, inv.ID, fx.landlord.ID, domain.InvoicePaid)
	require.NoError(t, err)

	_, err = svc.Update(ctx, inv.ID, fx.landlord.ID, InvoiceInput{
		Description: "Too late",
		Amount:      1,
	})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestDeleteInvoiceRemovesPair(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	fx := newOccupiedFixture(t, st)

	svc := &InvoiceService{Store: st}

	inv, err := svc.Create(ctx, fx.landlord.ID, InvoiceInput{
		MaintenanceRequestID: fx.maintenance.ID,
		Description:          "Replacement hot water system",
		Amount:               145000,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, inv.ID, fx.landlord.ID))

	_, err = st.Invoices().GetInvoiceByID(ctx, inv.ID)
	require.Error(t, err)
	_, err = st.Payments().GetPaymentByID(ctx, inv.PaymentID)
	require.Error(t, err)
}

func TestTenantPaymentVisibility(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	fx := newOccupiedFixture(t, st)

	svc := &InvoiceService{Store: st}

	_, err := svc.Create(ctx, fx.landlord.ID, InvoiceInput{
		MaintenanceRequestID: fx.maintenance.ID,
		Description:          "Shared repair",
		Amount:               50000,
		SharedWithTenant:     true,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, fx.landlord.ID, InvoiceInput{
		MaintenanceRequestID: fx.maintenance.ID,
		Description:          "Private repair",
		Amount:               90000,
		SharedWithTenant:     false,
	})
	require.NoError(t, err)

	landlordView, err := svc.ListPayments(ctx, fx.landlord.ID, domain.RoleLandlord)
	require.NoError(t, err)
	require.Len(t, landlordView, 2)

	tenantView, err := svc.ListPayments(ctx, fx.tenant.ID, domain.RoleTenant)
	require.NoError(t, err)
	require.Len(t, tenantView, 1)
	require.EqualValues(t, 50000, tenantView[0].Amount)
}
