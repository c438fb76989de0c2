package leasingapi

import "time"

// ErrorResponse is the standard error envelope returned by every endpoint.
// The conflict fields are only populated on 409 responses caused by the
// signer already holding an active lease.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "not_found", "conflict")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`

	// ExistingLeaseID identifies the signer's current active lease on
	// active-lease conflicts
	ExistingLeaseID string `json:"existing_lease_id,omitempty"`

	// ExistingLeaseType is the variant ("standard" or "custom") of that lease
	ExistingLeaseType string `json:"existing_lease_type,omitempty"`
}

// ============================================================================
// Users
// ============================================================================

// UserRequest syncs the caller's profile. Identity and role always come from
// the bearer token, never from the body.
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

// ============================================================================
// Listings
// ============================================================================

type ListingRequest struct {
	Title      string `json:"title"`
	Address    string `json:"address"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Bedrooms   int    `json:"bedrooms,omitempty"`
	Bathrooms  int    `json:"bathrooms,omitempty"`

	// RentAmount and DepositAmount are integer cents
	RentAmount    int64 `json:"rent_amount"`
	DepositAmount int64 `json:"deposit_amount,omitempty"`
}

type ListingResponse struct {
	ID            string    `json:"id"`
	LandlordID    string    `json:"landlord_id"`
	Title         string    `json:"title"`
	Address       string    `json:"address"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	PostalCode    string    `json:"postal_code,omitempty"`
	Bedrooms      int       `json:"bedrooms,omitempty"`
	Bathrooms     int       `json:"bathrooms,omitempty"`
	RentAmount    int64     `json:"rent_amount"`
	DepositAmount int64     `json:"deposit_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ============================================================================
// Applications
// ============================================================================

type EmploymentRequest struct {
	Employer      string     `json:"employer"`
	Position      string     `json:"position,omitempty"`
	MonthlyIncome int64      `json:"monthly_income,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

type EmploymentResponse struct {
	ID            string     `json:"id"`
	Employer      string     `json:"employer"`
	Position      string     `json:"position,omitempty"`
	MonthlyIncome int64      `json:"monthly_income,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

// ApplicationRequest creates an application for a listing. Leaving the
// applicant fields empty produces a placeholder application whose public
// link a prospective tenant fills in later.
type ApplicationRequest struct {
	ListingID      string              `json:"listing_id"`
	TenantID       string              `json:"tenant_id,omitempty"`
	ApplicantName  string              `json:"applicant_name,omitempty"`
	ApplicantEmail string              `json:"applicant_email,omitempty"`
	ApplicantPhone string              `json:"applicant_phone,omitempty"`
	MoveInDate     *time.Time          `json:"move_in_date,omitempty"`
	ExpiresAt      *time.Time          `json:"expires_at,omitempty"`
	Employment     []EmploymentRequest `json:"employment,omitempty"`
}

// ApplicationSubmitRequest fills in an application through its public link.
type ApplicationSubmitRequest struct {
	TenantID       string              `json:"tenant_id,omitempty"`
	ApplicantName  string              `json:"applicant_name"`
	ApplicantEmail string              `json:"applicant_email"`
	ApplicantPhone string              `json:"applicant_phone,omitempty"`
	MoveInDate     *time.Time          `json:"move_in_date,omitempty"`
	Employment     []EmploymentRequest `json:"employment,omitempty"`
}

// ApplicationStatusRequest records the landlord's decision. Status must be
// APPROVED, REJECTED or CANCELLED.
type ApplicationStatusRequest struct {
	Status        string `json:"status"`
	DecisionNotes string `json:"decision_notes,omitempty"`
}

type ApplicationDeleteBatchRequest struct {
	IDs []string `json:"ids"`
}

type ApplicationResponse struct {
	ID             string               `json:"id"`
	PublicID       string               `json:"public_id"`
	ListingID      string               `json:"listing_id"`
	LandlordID     string               `json:"landlord_id"`
	TenantID       string               `json:"tenant_id,omitempty"`
	ApplicantName  string               `json:"applicant_name"`
	ApplicantEmail string               `json:"applicant_email"`
	ApplicantPhone string               `json:"applicant_phone,omitempty"`
	MoveInDate     *time.Time           `json:"move_in_date,omitempty"`
	Status         string               `json:"status"`
	ExpiresAt      *time.Time           `json:"expires_at,omitempty"`
	LeaseID        string               `json:"lease_id,omitempty"`
	ReviewedBy     string               `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time           `json:"reviewed_at,omitempty"`
	DecisionNotes  string               `json:"decision_notes,omitempty"`
	Employment     []EmploymentResponse `json:"employment,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// PublicApplicationResponse is the applicant-facing projection served on the
// unauthenticated public link. Landlord-side fields (reviewer, decision
// notes, lease and tenant bindings) stay off it.
type PublicApplicationResponse struct {
	PublicID       string               `json:"public_id"`
	ListingID      string               `json:"listing_id"`
	ApplicantName  string               `json:"applicant_name"`
	ApplicantEmail string               `json:"applicant_email"`
	ApplicantPhone string               `json:"applicant_phone,omitempty"`
	MoveInDate     *time.Time           `json:"move_in_date,omitempty"`
	Status         string               `json:"status"`
	ExpiresAt      *time.Time           `json:"expires_at,omitempty"`
	Employment     []EmploymentResponse `json:"employment,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// ============================================================================
// Leases
// ============================================================================

// LeaseRequest drafts a lease directly. Type is "standard" or "custom";
// custom leases must carry the object URL of an uploaded agreement.
type LeaseRequest struct {
	ListingID     string    `json:"listing_id"`
	Type          string    `json:"type"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	RentAmount    int64     `json:"rent_amount"`
	DepositAmount int64     `json:"deposit_amount,omitempty"`
	DocumentURL   string    `json:"document_url,omitempty"`
}

type LeaseTerminateRequest struct {
	Date   *time.Time `json:"date,omitempty"`
	Reason string     `json:"reason,omitempty"`
	Notes  string     `json:"notes,omitempty"`
}

type LeaseResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	LandlordID    string    `json:"landlord_id"`
	TenantID      string    `json:"tenant_id,omitempty"`
	ListingID     string    `json:"listing_id"`
	Status        string    `json:"status"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	RentAmount    int64     `json:"rent_amount"`
	DepositAmount int64     `json:"deposit_amount"`
	DocumentURL   string    `json:"document_url,omitempty"`

	TerminationDate   *time.Time `json:"termination_date,omitempty"`
	TerminationReason string     `json:"termination_reason,omitempty"`
	TerminationNotes  string     `json:"termination_notes,omitempty"`
	TerminatedBy      string     `json:"terminated_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ============================================================================
// Invites and signing
// ============================================================================

// InviteResponse carries the one-time raw signing token. It is never
// returned again; only a fingerprint is stored.
type InviteResponse struct {
	InviteID  string    `json:"invite_id"`
	Token     string    `json:"token"`
	ShareURL  string    `json:"share_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// InviteViewResponse is the applicant-facing projection of an invite: the
// lease terms the signer is about to agree to.
type InviteViewResponse struct {
	InviteID      string    `json:"invite_id"`
	LeaseType     string    `json:"lease_type"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	RentAmount    int64     `json:"rent_amount"`
	DepositAmount int64     `json:"deposit_amount"`
	DocumentURL   string    `json:"document_url,omitempty"`
	Property      string    `json:"property,omitempty"`
	LandlordName  string    `json:"landlord_name,omitempty"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// ============================================================================
// Maintenance, invoices and payments
// ============================================================================

type MaintenanceRequestBody struct {
	ListingID   string `json:"listing_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type MaintenanceResponse struct {
	ID          string    `json:"id"`
	ListingID   string    `json:"listing_id"`
	LandlordID  string    `json:"landlord_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type InvoiceRequest struct {
	MaintenanceRequestID string `json:"maintenance_request_id"`
	Description          string `json:"description"`
	Amount               int64  `json:"amount"`
	SharedWithTenant     bool   `json:"shared_with_tenant,omitempty"`
}

// InvoiceStatusRequest moves an invoice between PENDING, PAID and CANCELLED.
type InvoiceStatusRequest struct {
	Status string `json:"status"`
}

type InvoiceResponse struct {
	ID                   string    `json:"id"`
	MaintenanceRequestID string    `json:"maintenance_request_id"`
	PaymentID            string    `json:"payment_id"`
	LandlordID           string    `json:"landlord_id"`
	Description          string    `json:"description"`
	Amount               int64     `json:"amount"`
	Status               string    `json:"status"`
	SharedWithTenant     bool      `json:"shared_with_tenant"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type PaymentResponse struct {
	ID         string     `json:"id"`
	TenantID   string     `json:"tenant_id"`
	LandlordID string     `json:"landlord_id"`
	ListingID  string     `json:"listing_id"`
	Type       string     `json:"type"`
	Status     string     `json:"status"`
	Amount     int64      `json:"amount"`
	PaidDate   *time.Time `json:"paid_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ============================================================================
// Documents
// ============================================================================

type UploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
}

type UploadURLResponse struct {
	// URL is the time-limited presigned upload URL
	URL string `json:"url"`

	// ObjectURL is the stable URL to persist on a lease after upload
	ObjectURL string `json:"object_url"`

	ExpiresAt time.Time `json:"expires_at"`
}

// ============================================================================
// System
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
