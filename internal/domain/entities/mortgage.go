package entities

import "time"

type MortgageApplicationStatus string

const (
	MortgageStatusSubmitted MortgageApplicationStatus = "submitted"
	MortgageStatusApproved  MortgageApplicationStatus = "approved"
	MortgageStatusDeclined  MortgageApplicationStatus = "declined"
)

// MortgageApplication is a buyer's mortgage application tracked alongside a
// purchase.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (buyer_id-index): buyer_id
//
// LTV is loan amount over property value as a percentage, computed once at
// creation; a zero property value yields an LTV of 0 rather than an error.

type MortgageApplication struct {
	ID            string                    `json:"id"`
	BuyerID       string                    `json:"buyer_id"`
	TransactionID string                    `json:"transaction_id,omitempty"`
	Lender        string                    `json:"lender"`
	LoanAmount    MonetaryAmount            `json:"loan_amount"`
	PropertyValue MonetaryAmount            `json:"property_value"`
	TermYears     int                       `json:"term_years"`
	LTV           string                    `json:"ltv"`
	Status        MortgageApplicationStatus `json:"status"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}
