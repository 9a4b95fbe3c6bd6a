package response

import (
	"time"

	"propie_backend/internal/domain/entities"
)

type MortgageApplicationResponse struct {
	ID            string        `json:"id"`
	BuyerID       string        `json:"buyer_id"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Lender        string        `json:"lender"`
	LoanAmount    MoneyResponse `json:"loan_amount"`
	PropertyValue MoneyResponse `json:"property_value"`
	TermYears     int           `json:"term_years"`
	LTV           string        `json:"ltv"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func FromMortgageApplication(app entities.MortgageApplication) MortgageApplicationResponse {
	return MortgageApplicationResponse{
		ID:            app.ID,
		BuyerID:       app.BuyerID,
		TransactionID: app.TransactionID,
		Lender:        app.Lender,
		LoanAmount:    FromMonetaryAmount(app.LoanAmount),
		PropertyValue: FromMonetaryAmount(app.PropertyValue),
		TermYears:     app.TermYears,
		LTV:           app.LTV,
		Status:        string(app.Status),
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	}
}

func FromMortgageApplications(apps []entities.MortgageApplication) []MortgageApplicationResponse {
	out := make([]MortgageApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, FromMortgageApplication(app))
	}
	return out
}
