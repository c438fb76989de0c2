package store

import (
	"context"
	"errors"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a WithTx helper because every cross-entity mutation in the
// leasing core (approval + lease creation, signing, invoice/payment pairing)
// must be a single transaction.
type Store interface {
	Users() Users
	Listings() Listings
	Applications() Applications
	Leases() Leases
	Invites() Invites
	Maintenance() Maintenance
	Invoices() Invoices
	Payments() Payments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// UpsertUser mirrors an account from the identity provider (id is theirs).
	UpsertUser(ctx context.Context, u domain.User) error
}

type Listings interface {
	CreateListing(ctx context.Context, l domain.Listing) error
	GetListingByID(ctx context.Context, id string) (domain.Listing, error)

	// ListListingsByLandlord returns the landlord's listings, newest first.
	ListListingsByLandlord(ctx context.Context, landlordID string) ([]domain.Listing, error)

	// ListAvailableListings returns listings with status ACTIVE, newest first.
	ListAvailableListings(ctx context.Context) ([]domain.Listing, error)

	UpdateListing(ctx context.Context, l domain.Listing) error

	// UpdateListingStatus flips availability; used by the signing flow.
	UpdateListingStatus(ctx context.Context, id string, status domain.ListingStatus) error

	DeleteListing(ctx context.Context, id string) error
}

type Applications interface {
	// CreateApplication inserts the application row only; employment rows go
	// through CreateEmploymentInfo in the same transaction.
	CreateApplication(ctx context.Context, a domain.Application) error

	GetApplicationByID(ctx context.Context, id string) (domain.Application, error)
	GetApplicationByPublicID(ctx context.Context, publicID string) (domain.Application, error)
	ListApplicationsByLandlord(ctx context.Context, landlordID string) ([]domain.Application, error)

	// UpdateApplicantFields overwrites the applicant-supplied fields and
	// (re)sets status to NEW. Used by the public submission endpoint.
	UpdateApplicantFields(ctx context.Context, a domain.Application) error

	// SetApplicationStatus records the landlord's decision metadata.
	SetApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus, reviewedBy string, reviewedAt time.Time, notes string) error

	// LinkLease sets lease_id once a lease has been created from the
	// application.
	LinkLease(ctx context.Context, id string, leaseID string) error

	DeleteApplication(ctx context.Context, id string) error

	CreateEmploymentInfo(ctx context.Context, e domain.EmploymentInfo) error
	ListEmploymentByApplication(ctx context.Context, applicationID string) ([]domain.EmploymentInfo, error)
	DeleteEmploymentByApplication(ctx context.Context, applicationID string) error
}

type Leases interface {
	// CreateLease dispatches on l.Type to the standard or custom table.
	CreateLease(ctx context.Context, l domain.Lease) error

	GetLease(ctx context.Context, ref domain.LeaseRef) (domain.Lease, error)

	ListLeasesByLandlord(ctx context.Context, landlordID string) ([]domain.Lease, error)
	ListLeasesByTenant(ctx context.Context, tenantID string) ([]domain.Lease, error)

	// UpdateLeaseTerms updates the mutable draft fields (dates, rent,
	// deposit, document URL) and bumps updated_at. Status, tenant binding and
	// termination fields have dedicated mutators.
	UpdateLeaseTerms(ctx context.Context, l domain.Lease) error

	// ActivateLease binds the tenant and moves DRAFT to ACTIVE. Returns the
	// number of rows changed so callers can detect a lost race.
	ActivateLease(ctx context.Context, ref domain.LeaseRef, tenantID string, now time.Time) (int64, error)

	// TerminateLease records the termination metadata and moves the lease to
	// TERMINATED.
	TerminateLease(ctx context.Context, ref domain.LeaseRef, date time.Time, reason, notes, terminatedBy string) error

	// ExpireOverdue is an idempotent check-and-flip: every ACTIVE lease in
	// either variant whose end date is before now becomes EXPIRED. Read paths
	// run this first so any reader deterministically observes EXPIRED.
	ExpireOverdue(ctx context.Context, now time.Time) error

	// FindActiveLeaseByTenant returns a lease (either variant) with the given
	// tenant, status ACTIVE and end date >= now, or ErrNotFound.
	FindActiveLeaseByTenant(ctx context.Context, tenantID string, now time.Time) (domain.Lease, error)

	// FindActiveLeaseByListing resolves the lease currently occupying a
	// listing; used to bill the right tenant for maintenance.
	FindActiveLeaseByListing(ctx context.Context, listingID string, now time.Time) (domain.Lease, error)

	// SetDocumentURL persists the rendered or uploaded contract location.
	SetDocumentURL(ctx context.Context, ref domain.LeaseRef, url string) error

	DeleteLease(ctx context.Context, ref domain.LeaseRef) error
}

type Invites interface {
	// CreateInvite writes a new invite (token_hash is the SHA-256 fingerprint
	// of the opaque signing token).
	CreateInvite(ctx context.Context, inv domain.LeaseInvite) error

	GetInviteByTokenHash(ctx context.Context, hash string) (domain.LeaseInvite, error)

	// MarkInviteSigned flips signed to true and binds the tenant, guarded by
	// signed = false. Returns the number of rows changed; 0 means another
	// transaction already signed this invite.
	MarkInviteSigned(ctx context.Context, inviteID, tenantID string, now time.Time) (int64, error)

	// DeleteExpiredUnsignedInvites is housekeeping; signed invites are kept
	// as an audit trail.
	DeleteExpiredUnsignedInvites(ctx context.Context, now time.Time) error
}

type Maintenance interface {
	CreateMaintenanceRequest(ctx context.Context, m domain.MaintenanceRequest) error
	GetMaintenanceRequestByID(ctx context.Context, id string) (domain.MaintenanceRequest, error)
	ListMaintenanceByLandlord(ctx context.Context, landlordID string) ([]domain.MaintenanceRequest, error)
}

type Invoices interface {
	CreateInvoice(ctx context.Context, inv domain.Invoice) error
	GetInvoiceByID(ctx context.Context, id string) (domain.Invoice, error)
	ListInvoicesByLandlord(ctx context.Context, landlordID string) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, inv domain.Invoice) error
	UpdateInvoiceStatus(ctx context.Context, id string, status domain.InvoiceStatus) error
	DeleteInvoice(ctx context.Context, id string) error
}

type Payments interface {
	CreatePayment(ctx context.Context, p domain.Payment) error
	GetPaymentByID(ctx context.Context, id string) (domain.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, paidDate *time.Time) error
	UpdatePaymentAmount(ctx context.Context, id string, amount int64) error
	DeletePayment(ctx context.Context, id string) error

	// ListPaymentsForLandlord is the unfiltered landlord view.
	ListPaymentsForLandlord(ctx context.Context, landlordID string) ([]domain.Payment, error)

	// ListPaymentsForTenant excludes payments whose linked invoice has
	// shared_with_tenant = false. Same rows, per-viewer projection.
	ListPaymentsForTenant(ctx context.Context, tenantID string) ([]domain.Payment, error)
}
