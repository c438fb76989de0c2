package domain

import "time"

type ListingStatus string

const (
	// ListingActive means the property is available to rent.
	ListingActive ListingStatus = "ACTIVE"
	// ListingRented means an active lease occupies the property.
	ListingRented ListingStatus = "RENTED"
)

type Listing struct {
	ID            string
	LandlordID    string
	Title         string
	Address       string
	City          string
	State         string
	PostalCode    string
	Bedrooms      int
	Bathrooms     int
	RentAmount    int64 // cents
	DepositAmount int64 // cents
	Status        ListingStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
