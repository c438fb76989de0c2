package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/notify"
	"github.com/havenlet/leasing/internal/leasing/store"
	"github.com/havenlet/leasing/pkg/cryptox"
	"github.com/havenlet/leasing/pkg/idx"
	"github.com/havenlet/leasing/pkg/slogx"
)

// ApplicationService owns the rental-application entity and turns an
// approved application into a draft lease.
type ApplicationService struct {
	Store    store.Store
	Notifier notify.Notifier
}

type EmploymentInput struct {
	Employer      string
	Position      string
	MonthlyIncome int64
	StartDate     *time.Time
	EndDate       *time.Time
}

type CreateApplicationInput struct {
	ListingID      string
	TenantID       string // optional: known applicant account
	ApplicantName  string
	ApplicantEmail string
	ApplicantPhone string
	MoveInDate     *time.Time
	ExpiresAt      *time.Time
	Employment     []EmploymentInput
}

type SubmitApplicationInput struct {
	TenantID       string // optional: applicant's account, if they have one
	ApplicantName  string
	ApplicantEmail string
	ApplicantPhone string
	MoveInDate     *time.Time
	Employment     []EmploymentInput
}

// Create makes a new application for one of the landlord's listings. Leaving
// the applicant fields empty produces a placeholder application: a shareable
// link a prospective tenant fills in later via the public endpoint.
func (s *ApplicationService) Create(ctx context.Context, landlordID string, in CreateApplicationInput) (domain.Application, error) {
	log := slogx.FromContext(ctx)

	// 1. The target listing must exist and belong to the caller.
	listing, err := s.Store.Listings().GetListingByID(ctx, in.ListingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Application{}, ErrNotFound
		}
		log.Error("failed to fetch listing", slog.Any("error", err))
		return domain.Application{}, err
	}
	if listing.LandlordID != landlordID {
		log.Warn("attempted to create application for someone else's listing",
			slog.String("listing_id", listing.ID),
			slog.String("caller_id", landlordID),
		)
		return domain.Application{}, ErrForbidden
	}

	// 2. An unfilled link gets the placeholder sentinels.
	name, email := in.ApplicantName, in.ApplicantEmail
	if name == "" && email == "" && in.TenantID == "" {
		name, email = domain.PlaceholderName, domain.PlaceholderEmail
	}

	// 3. The public id must be unguessable; it gates the public endpoints.
	publicID, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		log.Error("failed to generate application public id", slog.Any("error", err))
		return domain.Application{}, err
	}

	app := domain.Application{
		ID:             idx.New().String(),
		PublicID:       publicID,
		ListingID:      listing.ID,
		LandlordID:     landlordID,
		TenantID:       in.TenantID,
		ApplicantName:  name,
		ApplicantEmail: email,
		ApplicantPhone: in.ApplicantPhone,
		MoveInDate:     in.MoveInDate,
		Status:         domain.ApplicationNew,
		ExpiresAt:      in.ExpiresAt,
	}

	// 4. Application and nested employment rows land together.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Applications().CreateApplication(ctx, app); err != nil {
			return err
		}
		return createEmploymentRows(ctx, tx, app.ID, in.Employment)
	})
	if err != nil {
		log.Error("failed to create application", slog.Any("error", err))
		return domain.Application{}, err
	}

	log.Debug("application created",
		slog.String("application_id", app.ID),
		slog.String("listing_id", listing.ID),
		slog.Bool("placeholder", app.IsPlaceholder()),
	)
	return s.loadApplication(ctx, app.ID)
}

// GetPublic fetches an application by its public id for the applicant-facing
// form. Expired links behave like forbidden resources.
func (s *ApplicationService) GetPublic(ctx context.Context, publicID string) (domain.Application, error) {
	app, err := s.Store.Applications().GetApplicationByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Application{}, ErrNotFound
		}
		return domain.Application{}, err
	}
	if app.ExpiresAt != nil && time.Now().After(*app.ExpiresAt) {
		return domain.Application{}, ErrForbidden
	}

	app.Employment, err = s.Store.Applications().ListEmploymentByApplication(ctx, app.ID)
	if err != nil {
		return domain.Application{}, err
	}
	return app, nil
}

// SubmitPublic fills in the applicant-supplied fields on a still-pending
// application reached through its public link. Decided applications are
// closed to resubmission.
func (s *ApplicationService) SubmitPublic(ctx context.Context, publicID string, in SubmitApplicationInput) (domain.Application, error) {
	log := slogx.FromContext(ctx)

	// 1. Resolve the link.
	app, err := s.Store.Applications().GetApplicationByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Application{}, ErrNotFound
		}
		log.Error("failed to fetch application", slog.Any("error", err))
		return domain.Application{}, err
	}

	// 2. Expired links cannot be submitted.
	if app.ExpiresAt != nil && time.Now().After(*app.ExpiresAt) {
		log.Warn("submission attempted on expired application link",
			slog.String("application_id", app.ID),
		)
		return domain.Application{}, ErrForbidden
	}

	// A decided application is closed; the link only fills a pending one.
	if app.Status != domain.ApplicationNew {
		log.Warn("submission attempted on decided application",
			slog.String("application_id", app.ID),
			slog.String("status", string(app.Status)),
		)
		return domain.Application{}, ErrInvalidState
	}

	if in.ApplicantName == "" || in.ApplicantEmail == "" {
		return domain.Application{}, ErrInvalidRequest
	}

	// 3. Overwrite applicant fields and replace employment rows atomically.
	app.TenantID = in.TenantID
	app.ApplicantName = in.ApplicantName
	app.ApplicantEmail = in.ApplicantEmail
	app.ApplicantPhone = in.ApplicantPhone
	app.MoveInDate = in.MoveInDate

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Applications().UpdateApplicantFields(ctx, app); err != nil {
			return err
		}
		if err := tx.Applications().DeleteEmploymentByApplication(ctx, app.ID); err != nil {
			return err
		}
		return createEmploymentRows(ctx, tx, app.ID, in.Employment)
	})
	if err != nil {
		log.Error("failed to submit application", slog.Any("error", err))
		return domain.Application{}, err
	}

	s.notify(notify.Notification{
		Event:     notify.EventApplicationSubmitted,
		Recipient: app.LandlordID,
		Data:      map[string]string{"application_id": app.ID},
	})

	log.Debug("application submitted", slog.String("application_id", app.ID))
	return s.loadApplication(ctx, app.ID)
}

// UpdateStatus records the landlord's decision. Approving an application
// with a bound tenant creates its lease in the same transaction, exactly
// once; the lease starts on the requested move-in date (or today) and runs
// one year, with rent and deposit copied from the listing.
func (s *ApplicationService) UpdateStatus(
	ctx context.Context,
	applicationID string,
	landlordID string,
	status domain.ApplicationStatus,
	decisionNotes string,
) (domain.Application, *domain.Lease, error) {
	log := slogx.FromContext(ctx)

	switch status {
	case domain.ApplicationApproved, domain.ApplicationRejected, domain.ApplicationCancelled:
	default:
		return domain.Application{}, nil, ErrInvalidRequest
	}

	// 1. Load and authorize.
	app, err := s.Store.Applications().GetApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Application{}, nil, ErrNotFound
		}
		log.Error("failed to fetch application", slog.Any("error", err))
		return domain.Application{}, nil, err
	}
	if app.LandlordID != landlordID {
		return domain.Application{}, nil, ErrForbidden
	}

	// 2. Decisions are write-once: only NEW applications can be decided.
	if app.Status != domain.ApplicationNew {
		log.Warn("decision attempted on already-decided application",
			slog.String("application_id", app.ID),
			slog.String("status", string(app.Status)),
		)
		return domain.Application{}, nil, ErrInvalidState
	}

	var createdLease *domain.Lease
	now := time.Now().UTC()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Applications().SetApplicationStatus(ctx, app.ID, status, landlordID, now, decisionNotes); err != nil {
			return err
		}

		// Approval without a bound tenant only records metadata; there is
		// nobody to draft a lease for yet.
		if status != domain.ApplicationApproved || app.TenantID == "" {
			return nil
		}

		lease, err := s.draftLeaseFromApplication(ctx, tx, app, now)
		if err != nil {
			return err
		}
		if err := tx.Leases().CreateLease(ctx, lease); err != nil {
			return err
		}
		if err := tx.Applications().LinkLease(ctx, app.ID, lease.ID); err != nil {
			return err
		}
		createdLease = &lease
		return nil
	})
	if err != nil {
		log.Error("failed to update application status", slog.Any("error", err))
		return domain.Application{}, nil, err
	}

	if !app.IsPlaceholder() && app.TenantID != "" {
		s.notify(notify.Notification{
			Event:     notify.EventApplicationDecided,
			Recipient: app.TenantID,
			Data: map[string]string{
				"application_id": app.ID,
				"status":         string(status),
			},
		})
	}

	log.Info("application decided",
		slog.String("application_id", app.ID),
		slog.String("status", string(status)),
		slog.Bool("lease_created", createdLease != nil),
	)

	updated, err := s.loadApplication(ctx, app.ID)
	if err != nil {
		return domain.Application{}, nil, err
	}
	return updated, createdLease, nil
}

// draftLeaseFromApplication builds the DRAFT lease for an approved
// application, capturing the document snapshot from the live landlord,
// tenant and listing rows at approval time.
func (s *ApplicationService) draftLeaseFromApplication(ctx context.Context, tx store.Tx, app domain.Application, now time.Time) (domain.Lease, error) {
	listing, err := tx.Listings().GetListingByID(ctx, app.ListingID)
	if err != nil {
		return domain.Lease{}, err
	}
	landlord, err := tx.Users().GetUserByID(ctx, app.LandlordID)
	if err != nil {
		return domain.Lease{}, err
	}
	tenant, err := tx.Users().GetUserByID(ctx, app.TenantID)
	if err != nil {
		return domain.Lease{}, err
	}

	start := now
	if app.MoveInDate != nil {
		start = *app.MoveInDate
	}

	return domain.Lease{
		ID:            idx.New().String(),
		Type:          domain.LeaseStandard,
		LandlordID:    app.LandlordID,
		ListingID:     app.ListingID,
		Status:        domain.LeaseDraft,
		StartDate:     start,
		EndDate:       start.AddDate(1, 0, 0),
		RentAmount:    listing.RentAmount,
		DepositAmount: listing.DepositAmount,
		Snapshot: &domain.LeaseSnapshot{
			LandlordName:    landlord.Name,
			LandlordEmail:   landlord.Email,
			LandlordPhone:   landlord.Phone,
			TenantName:      tenant.Name,
			TenantEmail:     tenant.Email,
			TenantPhone:     tenant.Phone,
			PropertyAddress: listing.Address,
			PropertyCity:    listing.City,
			PropertyState:   listing.State,
			PropertyPostal:  listing.PostalCode,
		},
	}, nil
}

// Delete removes one application. An approved application with a linked
// lease must be handled through lease termination instead.
func (s *ApplicationService) Delete(ctx context.Context, applicationID, landlordID string) error {
	app, err := s.Store.Applications().GetApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if app.LandlordID != landlordID {
		return ErrForbidden
	}
	if app.Status == domain.ApplicationApproved && app.LeaseID != "" {
		return ErrInvalidState
	}

	return s.Store.Applications().DeleteApplication(ctx, app.ID)
}

// DeleteBatch removes several applications atomically; if any of them is an
// approved application with a linked lease, nothing is deleted.
func (s *ApplicationService) DeleteBatch(ctx context.Context, applicationIDs []string, landlordID string) error {
	if len(applicationIDs) == 0 {
		return ErrInvalidRequest
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, id := range applicationIDs {
			app, err := tx.Applications().GetApplicationByID(ctx, id)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return ErrNotFound
				}
				return err
			}
			if app.LandlordID != landlordID {
				return ErrForbidden
			}
			if app.Status == domain.ApplicationApproved && app.LeaseID != "" {
				return ErrInvalidState
			}
			if err := tx.Applications().DeleteApplication(ctx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ApplicationService) List(ctx context.Context, landlordID string) ([]domain.Application, error) {
	return s.Store.Applications().ListApplicationsByLandlord(ctx, landlordID)
}

func (s *ApplicationService) loadApplication(ctx context.Context, id string) (domain.Application, error) {
	app, err := s.Store.Applications().GetApplicationByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	app.Employment, err = s.Store.Applications().ListEmploymentByApplication(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	return app, nil
}

// notify dispatches fire-and-forget; delivery failures never affect the
// primary operation.
func (s *ApplicationService) notify(n notify.Notification) {
	if s.Notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Notifier.Send(ctx, n); err != nil {
			slog.Warn("notification dispatch failed",
				slog.String("event", n.Event),
				slog.Any("error", err),
			)
		}
	}()
}

func createEmploymentRows(ctx context.Context, tx store.Tx, applicationID string, rows []EmploymentInput) error {
	for _, e := range rows {
		if e.Employer == "" {
			return ErrInvalidRequest
		}
		err := tx.Applications().CreateEmploymentInfo(ctx, domain.EmploymentInfo{
			ID:            idx.New().String(),
			ApplicationID: applicationID,
			Employer:      e.Employer,
			Position:      e.Position,
			MonthlyIncome: e.MonthlyIncome,
			StartDate:     e.StartDate,
			EndDate:       e.EndDate,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
