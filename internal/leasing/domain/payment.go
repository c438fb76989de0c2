package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

type PaymentType string

const (
	PaymentMaintenance PaymentType = "MAINTENANCE"
)

type Payment struct {
	ID         string
	TenantID   string
	LandlordID string
	ListingID  string
	Type       PaymentType
	Status     PaymentStatus
	Amount     int64 // cents
	PaidDate   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// Invoice bills a maintenance cost. Every invoice has exactly one companion
// Payment (PaymentID); the pair is created, status-synced and deleted
// together. SharedWithTenant gates tenant-side visibility of the companion
// payment.
type Invoice struct {
	ID                   string
	MaintenanceRequestID string
	PaymentID            string
	LandlordID           string
	Description          string
	Amount               int64 // cents
	Status               InvoiceStatus
	SharedWithTenant     bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type MaintenanceStatus string

const (
	MaintenanceOpen     MaintenanceStatus = "OPEN"
	MaintenanceResolved MaintenanceStatus = "RESOLVED"
)

type MaintenanceRequest struct {
	ID          string
	ListingID   string
	LandlordID  string
	Title       string
	Description string
	Status      MaintenanceStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
