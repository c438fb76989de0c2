package domain

import "time"

type Role string

const (
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
)

// User is a thin mirror of the identity provider's account record. Identity
// is owned externally; rows exist for referential integrity and so the
// signing flow can resolve the acting tenant.
type User struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
