package response

import (
	"time"

	"propie_backend/internal/domain/entities"
)

type PaymentResponse struct {
	EventID       string        `json:"event_id"`
	TransactionID string        `json:"transaction_id,omitempty"`
	BuyerID       string        `json:"buyer_id,omitempty"`
	UnitID        string        `json:"unit_id,omitempty"`
	PaymentType   string        `json:"payment_type"`
	Amount        MoneyResponse `json:"amount"`
	Status        string        `json:"status"`
	FailureReason string        `json:"failure_reason,omitempty"`
	ReceivedAt    time.Time     `json:"received_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		EventID:       p.EventID,
		TransactionID: p.TransactionID,
		BuyerID:       p.BuyerID,
		UnitID:        p.UnitID,
		PaymentType:   string(p.PaymentType),
		Amount:        FromMonetaryAmount(p.Amount),
		Status:        string(p.Status),
		FailureReason: p.FailureReason,
		ReceivedAt:    p.ReceivedAt,
	}
}

// WebhookAckResponse is the provider-facing acknowledgement body.

type WebhookAckResponse struct {
	Received bool `json:"received"`
}
