package domain

import "time"

type ApplicationStatus string

const (
	ApplicationNew       ApplicationStatus = "NEW"
	ApplicationApproved  ApplicationStatus = "APPROVED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
	ApplicationCancelled ApplicationStatus = "CANCELLED"
)

// Placeholder sentinel values for applications generated as shareable links
// before any applicant has filled them in.
const (
	PlaceholderName  = "Prospective Tenant"
	PlaceholderEmail = "pending@placeholder.invalid"
)

// Application is a rental application. PublicID is an unguessable token that
// gates the public submission endpoint; LeaseID links the lease created on
// approval and is set exactly once.
type Application struct {
	ID         string
	PublicID   string
	ListingID  string
	LandlordID string
	TenantID   string // empty until an applicant with an account is bound

	ApplicantName  string
	ApplicantEmail string
	ApplicantPhone string
	MoveInDate     *time.Time

	Status        ApplicationStatus
	ExpiresAt     *time.Time
	LeaseID       string
	ReviewedBy    string
	ReviewedAt    *time.Time
	DecisionNotes string

	Employment []EmploymentInfo

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPlaceholder reports whether the application is an unfilled landlord
// generated link.
func (a Application) IsPlaceholder() bool {
	return a.TenantID == "" && a.ApplicantName == PlaceholderName && a.ApplicantEmail == PlaceholderEmail
}

// EmploymentInfo is a nested employment record supplied by the applicant.
type EmploymentInfo struct {
	ID            string
	ApplicationID string
	Employer      string
	Position      string
	MonthlyIncome int64 // cents
	StartDate     *time.Time
	EndDate       *time.Time
	CreatedAt     time.Time
}
