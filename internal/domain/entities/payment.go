package entities

import "time"

// PaymentStatus is the outcome recorded for a provider payment event.

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentType classifies what a payment settles. The reconciliation handler
// maps each type onto exactly one unit status move.

type PaymentType string

const (
	PaymentTypeBookingDeposit     PaymentType = "booking_deposit"
	PaymentTypeContractualDeposit PaymentType = "contractual_deposit"
	PaymentTypeCompletionPayment  PaymentType = "completion_payment"
	PaymentTypeHTBDrawdown        PaymentType = "htb_drawdown"
)

// Payment is the persisted record of one provider event.
//
// Storage model (DynamoDB):
//   - PK: event_id (provider-assigned; the conditional put on this key is
//     the processed-events set that makes reconciliation idempotent)
//   - GSI1 (transaction_id-index): transaction_id

type Payment struct {
	EventID       string         `json:"event_id"`
	TransactionID string         `json:"transaction_id,omitempty"`
	BuyerID       string         `json:"buyer_id,omitempty"`
	UnitID        string         `json:"unit_id,omitempty"`
	PaymentType   PaymentType    `json:"payment_type"`
	Amount        MonetaryAmount `json:"amount"`
	Status        PaymentStatus  `json:"status"`
	FailureReason string         `json:"failure_reason,omitempty"`
	ReceivedAt    time.Time      `json:"received_at"`
}

// Provider event types delivered to the webhook.
const (
	PaymentEventSucceeded = "payment_intent.succeeded"
	PaymentEventFailed    = "payment_intent.payment_failed"
)

// PaymentEventMetadata links a provider event back to platform entities.

type PaymentEventMetadata struct {
	TransactionID string      `json:"transaction_id,omitempty"`
	BuyerID       string      `json:"buyer_id,omitempty"`
	PropertyID    string      `json:"property_id,omitempty"`
	PaymentType   PaymentType `json:"payment_type"`
}

// PaymentEvent is one verified delivery from the payment provider. The
// caller has already checked the signature; delivery is at-least-once, so
// the same EventID may arrive any number of times.

type PaymentEvent struct {
	EventID       string               `json:"id"`
	Type          string               `json:"type"`
	Amount        MonetaryAmount       `json:"amount"`
	FailureReason string               `json:"failure_reason,omitempty"`
	Metadata      PaymentEventMetadata `json:"metadata"`
}
