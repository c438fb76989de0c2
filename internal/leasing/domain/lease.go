package domain

import "time"

type LeaseStatus string

const (
	LeaseDraft      LeaseStatus = "DRAFT"
	LeaseActive     LeaseStatus = "ACTIVE"
	LeaseExpired    LeaseStatus = "EXPIRED"
	LeaseTerminated LeaseStatus = "TERMINATED"
)

// LeaseType tags the two lease variants. Both share one status lifecycle and
// ownership model; a standard lease carries a document snapshot for the fixed
// layout contract, a custom lease references an uploaded document instead.
type LeaseType string

const (
	LeaseStandard LeaseType = "standard"
	LeaseCustom   LeaseType = "custom"
)

// LeaseRef identifies a lease across both variants.
type LeaseRef struct {
	ID   string
	Type LeaseType
}

// Lease is the sum type over both variants, dispatched by Type.
type Lease struct {
	ID         string
	Type       LeaseType
	LandlordID string
	TenantID   string // empty until signed
	ListingID  string

	Status        LeaseStatus
	StartDate     time.Time
	EndDate       time.Time
	RentAmount    int64 // cents, per month
	DepositAmount int64 // cents

	// DocumentURL points at the rendered contract (standard) or the uploaded
	// agreement (custom).
	DocumentURL string

	// Snapshot is only present on standard leases.
	Snapshot *LeaseSnapshot

	TerminationDate   *time.Time
	TerminationReason string
	TerminationNotes  string
	TerminatedBy      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l Lease) Ref() LeaseRef { return LeaseRef{ID: l.ID, Type: l.Type} }

// ActiveAt reports whether the lease is in force at t, i.e. ACTIVE and not
// past its end date.
func (l Lease) ActiveAt(t time.Time) bool {
	return l.Status == LeaseActive && !l.EndDate.Before(t)
}

// LeaseSnapshot is the denormalized landlord/tenant/property data captured
// when a standard lease is drafted. It is an immutable value object used to
// render the legal document; the live user and listing rows remain
// authoritative for current contact data.
type LeaseSnapshot struct {
	LandlordName    string
	LandlordEmail   string
	LandlordPhone   string
	TenantName      string
	TenantEmail     string
	TenantPhone     string
	PropertyAddress string
	PropertyCity    string
	PropertyState   string
	PropertyPostal  string
}
