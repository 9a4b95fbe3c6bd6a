package entities

import "time"

// UnitStatus is the sales state of one unit within a development.

type UnitStatus string

const (
	UnitStatusAvailable     UnitStatus = "available"
	UnitStatusReserved      UnitStatus = "reserved"
	UnitStatusUnderContract UnitStatus = "under_contract"
	UnitStatusSold          UnitStatus = "sold"
)

// Unit is one sellable property unit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (development_id-index): development_id
//
// ReservedBy records which buyer holds a reservation; the reconciliation
// handler only releases a reservation held by the same buyer.

type Unit struct {
	ID            string         `json:"id"`
	DevelopmentID string         `json:"development_id"`
	Name          string         `json:"name"`
	Bedrooms      int            `json:"bedrooms"`
	Bathrooms     int            `json:"bathrooms"`
	FloorAreaSqm  string         `json:"floor_area_sqm,omitempty"`
	BERRating     string         `json:"ber_rating,omitempty"`
	Price         MonetaryAmount `json:"price"`
	Status        UnitStatus     `json:"status"`
	ReservedBy    string         `json:"reserved_by,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// UnitSearchCriteria filters the property search. Zero values mean
// "no constraint".

type UnitSearchCriteria struct {
	DevelopmentID string
	Status        UnitStatus
	MinPrice      *MonetaryAmount
	MaxPrice      *MonetaryAmount
	MinBedrooms   int
}
