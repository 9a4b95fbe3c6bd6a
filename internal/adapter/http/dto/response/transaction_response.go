package response

import (
	"time"

	"propie_backend/internal/domain/entities"
)

type TransactionEventResponse struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata,omitempty"`
	At       time.Time         `json:"at"`
}

type TransactionResponse struct {
	ID               string                     `json:"id"`
	ReferenceNumber  string                     `json:"reference_number"`
	BuyerID          string                     `json:"buyer_id"`
	UnitID           string                     `json:"unit_id"`
	Status           string                     `json:"status"`
	Stage            string                     `json:"stage"`
	AgreedPrice      MoneyResponse              `json:"agreed_price"`
	DepositPaid      MoneyResponse              `json:"deposit_paid"`
	TotalPaid        MoneyResponse              `json:"total_paid"`
	MortgageRequired bool                       `json:"mortgage_required"`
	MortgageApproved bool                       `json:"mortgage_approved"`
	Events           []TransactionEventResponse `json:"events"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

func FromTransaction(tx entities.Transaction) TransactionResponse {
	events := make([]TransactionEventResponse, 0, len(tx.Events))
	for _, e := range tx.Events {
		events = append(events, TransactionEventResponse{
			ID:       e.ID,
			Type:     e.Type,
			Metadata: e.Metadata,
			At:       e.At,
		})
	}
	return TransactionResponse{
		ID:               tx.ID,
		ReferenceNumber:  tx.ReferenceNumber,
		BuyerID:          tx.BuyerID,
		UnitID:           tx.UnitID,
		Status:           string(tx.Status),
		Stage:            string(tx.Stage),
		AgreedPrice:      FromMonetaryAmount(tx.AgreedPrice),
		DepositPaid:      FromMonetaryAmount(tx.DepositPaid),
		TotalPaid:        FromMonetaryAmount(tx.TotalPaid),
		MortgageRequired: tx.MortgageRequired,
		MortgageApproved: tx.MortgageApproved,
		Events:           events,
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
	}
}

func FromTransactions(txs []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromTransaction(tx))
	}
	return out
}
