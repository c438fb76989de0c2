package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/havenlet/leasing/internal/leasing/domain"
)

func TestCreateApplicationPlaceholder(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &ApplicationService{Store: st}

	app, err := svc.Create(ctx, landlord.ID, CreateApplicationInput{ListingID: listing.ID})
	require.NoError(t, err)

	require.True(t, app.IsPlaceholder())
	require.Equal(t, domain.PlaceholderName, app.ApplicantName)
	require.Equal(t, domain.PlaceholderEmail, app.ApplicantEmail)
	require.Equal(t, domain.ApplicationNew, app.Status)
	require.NotEmpty(t, app.PublicID, "placeholder applications need a shareable public id")
}

func TestCreateApplicationForeignListing(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	owner := seedUser(t, st, domain.RoleLandlord, "Owner", "owner@example.com")
	other := seedUser(t, st, domain.RoleLandlord, "Other", "other@example.com")
	listing := seedListing(t, st, owner.ID)

	svc := &ApplicationService{Store: st}

	_, err := svc.Create(ctx, other.ID, CreateApplicationInput{ListingID: listing.ID})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestSubmitPublicFillsApplicantFields(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &ApplicationService{Store: st}

	app, err := svc.Create(ctx, landlord.ID, CreateApplicationInput{ListingID: listing.ID})
	require.NoError(t, err)

	got, err := svc.GetPublic(ctx, app.PublicID)
	require.NoError(t, err)
	require.Equal(t, app.ID, got.ID)

	submitted, err := svc.SubmitPublic(ctx, app.PublicID, SubmitApplicationInput{
		ApplicantName:  "Sam Okafor",
		ApplicantEmail: "sam@example.com",
		ApplicantPhone: "0411111111",
		Employment: []EmploymentInput{
			{Employer: "Port Authority", Position: "Engineer", MonthlyIncome: 820000},
		},
	})
	require.NoError(t, err)

	require.False(t, submitted.IsPlaceholder())
	require.Equal(t, "Sam Okafor", submitted.ApplicantName)
	require.Equal(t, domain.ApplicationNew, submitted.Status)
	require.Len(t, submitted.Employment, 1)
	require.Equal(t, "Port Authority", submitted.Employment[0].Employer)
}

func TestSubmitPublicReplacesEmployment(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &ApplicationService{Store: st}

	app, err := svc.Create(ctx, landlord.ID, CreateApplicationInput{
		ListingID:      listing.ID,
		ApplicantName:  "Sam Okafor",
		ApplicantEmail: "sam@example.com",
		Employment: []EmploymentInput{
			{Employer: "Old Employer"},
			{Employer: "Older Employer"},
		},
	})
	require.NoError(t, err)
	require.Len(t, app.Employment, 2)

	submitted, err := svc.SubmitPublic(ctx, app.PublicID, SubmitApplicationInput{
		ApplicantName:  "Sam Okafor",
		ApplicantEmail: "sam@example.com",
		Employment: []EmploymentInput{
			{Employer: "Current Employer", MonthlyIncome: 650000},
		},
	})
	require.NoError(t, err)
	require.Len(t, submitted.Employment, 1)
	require.Equal(t, "Current Employer", submitted.Employment[0].Employer)
}

func TestSubmitPublicRefusedAfterDecision(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &ApplicationService{Store: st}

	app, err := svc.Create(ctx, landlord.ID, CreateApplicationInput{
		ListingID:      listing.ID,
		TenantID:       tenant.ID,
		ApplicantName:  tenant.Name,
		ApplicantEmail: tenant.Email,
	})
	require.NoError(t, err)

	approved, lease, err := svc.UpdateStatus(ctx, app.ID, landlord.ID, domain.ApplicationApproved, "")
	require.NoError(t, err)
	require.NotNil(t, lease)

	// The public link cannot reopen a decided application.
	_, err = svc.SubmitPublic(ctx, app.PublicID, SubmitApplicationInput{
		ApplicantName:  "Someone Else",
		ApplicantEmail: "else@example.com",
	})
	require.ErrorIs(t, err, ErrInvalidState)

	got, err := st.Applications().GetApplicationByID(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationApproved, got.Status)
	require.Equal(t, approved.LeaseID, got.LeaseID, "the drafted lease must stay linked")
	require.Equal(t, tenant.Name, got.ApplicantName)

	// And a further decision stays refused, so no second lease can appear.
	_, _, err = svc.UpdateStatus(ctx, app.ID, landlord.ID, domain.ApplicationApproved, "")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestSubmitPublicExpiredLink(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &ApplicationService{Store: st}

	past := time.Now().UTC().Add(-time.Hour)
	app, err := svc.Create(ctx, landlord.ID, CreateApplicationInput{
		ListingID: listing.ID,
		ExpiresAt: &past,
	})
	require.NoError(t, err)

	_, err = svc.GetPublic(ctx, app.PublicID)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.SubmitPublic(ctx, app.PublicID, SubmitApplicationInput{
		ApplicantName:  "Sam Okafor",
		ApplicantEmail: "sam@example.com",
	})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestApproveApplicationDraftsLease(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &ApplicationService{Store: st}

	moveIn := time.Now().UTC().AddDate(0, 1, 0).Truncate(time.Second)
	app, err := svc.Create(ctx, landlord.ID, CreateApplicationInput{
		ListingID:      listing.ID,
		TenantID:       tenant.ID,
		ApplicantName:  tenant.Name,
		ApplicantEmail: tenant.Email,
		MoveInDate:     &moveIn,
	})
	require.NoError(t, err)

	updated, lease, err := svc.UpdateStatus(ctx, app.ID, landlord.ID, domain.ApplicationApproved, "references checked")
	require.NoError(t, err)
	require.NotNil(t, lease, "approving a bound application must draft its lease")

	require.Equal(t, domain.ApplicationApproved, updated.Status)
	require.Equal(t, lease.ID, updated.LeaseID)
	require.Equal(t, "references checked", updated.DecisionNotes)
	require.NotNil(t, updated.ReviewedAt)

	require.Equal(t, domain.LeaseStandard, lease.Type)
	require.Equal(t, domain.LeaseDraft, lease.Status)
	require.Equal(t, listing.RentAmount, lease.RentAmount)
	require.Equal(t, listing.DepositAmount, lease.DepositAmount)
	require.True(t, lease.StartDate.Equal(moveIn))
	require.True(t, lease.EndDate.Equal(moveIn.AddDate(1, 0, 0)))

	stored, err := st.Leases().GetLease(ctx, lease.Ref())
	require.NoError(t, err)
	require.NotNil(t, stored.Snapshot)
	require.Equal(t, landlord.Name, stored.Snapshot.LandlordName)
	require.Equal(t, tenant.Name, stored.Snapshot.TenantName)
	require.Equal(t, listing.Address, stored.Snapshot.PropertyAddress)
}

func TestApproveWithoutTenantSkipsLease(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &ApplicationService{Store: st}

	app, err := svc.Create(ctx, landlord.ID, CreateApplicationInput{
		ListingID:      listing.ID,
		ApplicantName:  "Walk In",
		ApplicantEmail: "walkin@example.com",
	})
	require.NoError(t, err)

	updated, lease, err := svc.UpdateStatus(ctx, app.ID, landlord.ID, domain.ApplicationApproved, "")
	require.NoError(t, err)
	require.Nil(t, lease)
	require.Equal(t, domain.ApplicationApproved, updated.Status)
	require.Empty(t, updated.LeaseID)
}

func TestDecisionIsWriteOnce(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &ApplicationService{Store: st}

	app, err := svc.Create(ctx, landlord.ID, CreateApplicationInput{
		ListingID:      listing.ID,
		ApplicantName:  "Sam Okafor",
		ApplicantEmail: "sam@example.com",
	})
	require.NoError(t, err)

	_, _, err = svc.UpdateStatus(ctx, app.ID, landlord.ID, domain.ApplicationRejected, "no references")
	require.NoError(t, err)

	_, _, err = svc.UpdateStatus(ctx, app.ID, landlord.ID, domain.ApplicationApproved, "")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	svc := &ApplicationService{Store: st}

	_, _, err := svc.UpdateStatus(ctx, "whatever", "whoever", domain.ApplicationStatus("PONDERING"), "")
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDeleteRefusesApprovedWithLease(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &ApplicationService{Store: st}

	app, err := svc.Create(ctx, landlord.ID, CreateApplicationInput{
		ListingID:      listing.ID,
		TenantID:       tenant.ID,
		ApplicantName:  tenant.Name,
		ApplicantEmail: tenant.Email,
	})
	require.NoError(t, err)

	_, lease, err := svc.UpdateStatus(ctx, app.ID, landlord.ID, domain.ApplicationApproved, "")
	require.NoError(t, err)
	require.NotNil(t, lease)

	require.ErrorIs(t, svc.Delete(ctx, app.ID, landlord.ID), ErrInvalidState)
}

func TestDeleteBatchIsAtomic(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	landlord := seedUser(t, st, domain.RoleLandlord, "Leanne Marsh", "leanne@example.com")
	tenant := seedUser(t, st, domain.RoleTenant, "Sam Okafor", "sam@example.com")
	listing := seedListing(t, st, landlord.ID)

	svc := &ApplicationService{Store: st}

	deletable, err := svc.Create(ctx, landlord.ID, CreateApplicationInput{
		ListingID:      listing.ID,
		ApplicantName:  "Walk In",
		ApplicantEmail: "walkin@example.com",
	})
	require.NoError(t, err)

	approved, err := svc.Create(ctx, landlord.ID, CreateApplicationInput{
		ListingID:      listing.ID,
		TenantID:       tenant.ID,
		ApplicantName:  tenant.Name,
		ApplicantEmail: tenant.Email,
	})
	require.NoError(t, err)
	_, lease, err := svc.UpdateStatus(ctx, approved.ID, landlord.ID, domain.ApplicationApproved, "")
	require.NoError(t, err)
	require.NotNil(t, lease)

	err = svc.DeleteBatch(ctx, []string{deletable.ID, approved.ID}, landlord.ID)
	require.ErrorIs(t, err, ErrInvalidState)

	// The batch rolled back; the deletable application survives.
	_, err = st.Applications().GetApplicationByID(ctx, deletable.ID)
	require.NoError(t, err)
}
