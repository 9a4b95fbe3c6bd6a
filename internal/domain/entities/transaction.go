package entities

import "time"

// TransactionStatus is the purchase funnel position of a transaction.
//
// Unlike the HTB claim machine the legacy platform allowed arbitrary status
// assignment here; this implementation adds an explicit forward transition
// table with the same shape as the claim machine. CANCELLED is reachable
// from any non-terminal state.

type TransactionStatus string

const (
	TxStatusEnquiry            TransactionStatus = "ENQUIRY"
	TxStatusViewingScheduled   TransactionStatus = "VIEWING_SCHEDULED"
	TxStatusOfferMade          TransactionStatus = "OFFER_MADE"
	TxStatusOfferAccepted      TransactionStatus = "OFFER_ACCEPTED"
	TxStatusReserved           TransactionStatus = "RESERVED"
	TxStatusDepositPaid        TransactionStatus = "DEPOSIT_PAID"
	TxStatusContracted         TransactionStatus = "CONTRACTED"
	TxStatusContractsExchanged TransactionStatus = "CONTRACTS_EXCHANGED"
	TxStatusMortgageApproved   TransactionStatus = "MORTGAGE_APPROVED"
	TxStatusClosing            TransactionStatus = "CLOSING"
	TxStatusCompleted          TransactionStatus = "COMPLETED"
	TxStatusCancelled          TransactionStatus = "CANCELLED"
)

var txForwardOrder = []TransactionStatus{
	TxStatusEnquiry,
	TxStatusViewingScheduled,
	TxStatusOfferMade,
	TxStatusOfferAccepted,
	TxStatusReserved,
	TxStatusDepositPaid,
	TxStatusContracted,
	TxStatusContractsExchanged,
	TxStatusMortgageApproved,
	TxStatusClosing,
	TxStatusCompleted,
}

func (s TransactionStatus) IsTerminal() bool {
	return s == TxStatusCompleted || s == TxStatusCancelled
}

func (s TransactionStatus) IsValid() bool {
	if s == TxStatusCancelled {
		return true
	}
	for _, st := range txForwardOrder {
		if st == s {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s. Transactions
// without a mortgage requirement skip MORTGAGE_APPROVED and move from
// CONTRACTS_EXCHANGED straight to CLOSING.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus, mortgageRequired bool) bool {
	if s.IsTerminal() {
		return false
	}
	if next == TxStatusCancelled {
		return true
	}
	if s == TxStatusContractsExchanged && next == TxStatusClosing && !mortgageRequired {
		return true
	}
	for i, st := range txForwardOrder {
		if st == s {
			return i+1 < len(txForwardOrder) && txForwardOrder[i+1] == next
		}
	}
	return false
}

// TransactionStage is the coarse phase label used for dashboard grouping.
// It is derived from the status, never set directly.

type TransactionStage string

const (
	TxStageInitialEnquiry TransactionStage = "INITIAL_ENQUIRY"
	TxStageOffer          TransactionStage = "OFFER"
	TxStageReservation    TransactionStage = "RESERVATION"
	TxStageContract       TransactionStage = "CONTRACT"
	TxStageLegal          TransactionStage = "LEGAL"
	TxStageCompletion     TransactionStage = "COMPLETION"
)

func (s TransactionStatus) Stage() TransactionStage {
	switch s {
	case TxStatusEnquiry, TxStatusViewingScheduled:
		return TxStageInitialEnquiry
	case TxStatusOfferMade, TxStatusOfferAccepted:
		return TxStageOffer
	case TxStatusReserved, TxStatusDepositPaid:
		return TxStageReservation
	case TxStatusContracted, TxStatusContractsExchanged:
		return TxStageContract
	case TxStatusMortgageApproved, TxStatusClosing:
		return TxStageLegal
	default:
		return TxStageCompletion
	}
}

// TransactionEvent is one append-only audit log entry.

type TransactionEvent struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata,omitempty"`
	At       time.Time         `json:"at"`
}

const (
	TxEventCreated       = "transaction_created"
	TxEventStatusChanged = "status_changed"
)

// Transaction is one property purchase.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (buyer_id-index): buyer_id
//
// Events are embedded; every status mutation appends one.

type Transaction struct {
	ID               string             `json:"id"`
	ReferenceNumber  string             `json:"reference_number"`
	BuyerID          string             `json:"buyer_id"`
	UnitID           string             `json:"unit_id"`
	Status           TransactionStatus  `json:"status"`
	Stage            TransactionStage   `json:"stage"`
	AgreedPrice      MonetaryAmount     `json:"agreed_price"`
	DepositPaid      MonetaryAmount     `json:"deposit_paid"`
	TotalPaid        MonetaryAmount     `json:"total_paid"`
	MortgageRequired bool               `json:"mortgage_required"`
	MortgageApproved bool               `json:"mortgage_approved"`
	Events           []TransactionEvent `json:"events"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}
