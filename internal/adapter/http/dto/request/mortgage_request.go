package request

type CreateMortgageApplicationRequest struct {
	BuyerID       string       `json:"buyer_id" binding:"required"`
	TransactionID string       `json:"transaction_id"`
	Lender        string       `json:"lender" binding:"required"`
	LoanAmount    MoneyRequest `json:"loan_amount" binding:"required"`
	PropertyValue MoneyRequest `json:"property_value" binding:"required"`
	TermYears     int          `json:"term_years" binding:"required"`
}
