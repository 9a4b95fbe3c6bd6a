package request

import (
	"propie_backend/internal/usecase"
)

type CreateTransactionRequest struct {
	BuyerID          string       `json:"buyer_id" binding:"required"`
	UnitID           string       `json:"unit_id" binding:"required"`
	AgreedPrice      MoneyRequest `json:"agreed_price" binding:"required"`
	MortgageRequired bool         `json:"mortgage_required"`
}

type UpdateTransactionStatusRequest struct {
	NewStatus        string        `json:"new_status" binding:"required"`
	DepositPaid      *MoneyRequest `json:"deposit_paid"`
	TotalPaid        *MoneyRequest `json:"total_paid"`
	MortgageApproved *bool         `json:"mortgage_approved"`
}

func (r UpdateTransactionStatusRequest) ToFinancialChanges() (usecase.FinancialChanges, error) {
	changes := usecase.FinancialChanges{MortgageApproved: r.MortgageApproved}
	if r.DepositPaid != nil {
		deposit, err := r.DepositPaid.ToMonetaryAmount()
		if err != nil {
			return usecase.FinancialChanges{}, err
		}
		changes.DepositPaid = &deposit
	}
	if r.TotalPaid != nil {
		total, err := r.TotalPaid.ToMonetaryAmount()
		if err != nil {
			return usecase.FinancialChanges{}, err
		}
		changes.TotalPaid = &total
	}
	return changes, nil
}
