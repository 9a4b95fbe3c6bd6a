package entities

import "time"

// HTBClaimStatus is the lifecycle state of a Help-to-Buy claim.
//
// Domain notes:
//   - Forward progression follows htbForwardOrder one step at a time.
//   - REJECTED, EXPIRED and CANCELLED are reachable from any non-terminal
//     state given an authorized actor and a reason note.
//   - Terminal states have no outgoing transitions; claims are never deleted.

type HTBClaimStatus string

const (
	HTBStatusInitiated           HTBClaimStatus = "INITIATED"
	HTBStatusAccessCodeReceived  HTBClaimStatus = "ACCESS_CODE_RECEIVED"
	HTBStatusAccessCodeSubmitted HTBClaimStatus = "ACCESS_CODE_SUBMITTED"
	HTBStatusDeveloperProcessing HTBClaimStatus = "DEVELOPER_PROCESSING"
	HTBStatusClaimCodeReceived   HTBClaimStatus = "CLAIM_CODE_RECEIVED"
	HTBStatusFundsRequested      HTBClaimStatus = "FUNDS_REQUESTED"
	HTBStatusFundsReceived       HTBClaimStatus = "FUNDS_RECEIVED"
	HTBStatusDepositApplied      HTBClaimStatus = "DEPOSIT_APPLIED"
	HTBStatusCompleted           HTBClaimStatus = "COMPLETED"
	HTBStatusRejected            HTBClaimStatus = "REJECTED"
	HTBStatusExpired             HTBClaimStatus = "EXPIRED"
	HTBStatusCancelled           HTBClaimStatus = "CANCELLED"
)

var htbForwardOrder = []HTBClaimStatus{
	HTBStatusInitiated,
	HTBStatusAccessCodeReceived,
	HTBStatusAccessCodeSubmitted,
	HTBStatusDeveloperProcessing,
	HTBStatusClaimCodeReceived,
	HTBStatusFundsRequested,
	HTBStatusFundsReceived,
	HTBStatusDepositApplied,
	HTBStatusCompleted,
}

func (s HTBClaimStatus) IsTerminal() bool {
	switch s {
	case HTBStatusCompleted, HTBStatusRejected, HTBStatusExpired, HTBStatusCancelled:
		return true
	}
	return false
}

func (s HTBClaimStatus) IsValid() bool {
	switch s {
	case HTBStatusRejected, HTBStatusExpired, HTBStatusCancelled:
		return true
	}
	for _, st := range htbForwardOrder {
		if st == s {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s: the immediate
// successor in the forward order, or one of the abort states when s is not
// already terminal.
func (s HTBClaimStatus) CanTransitionTo(next HTBClaimStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case HTBStatusRejected, HTBStatusExpired, HTBStatusCancelled:
		return true
	}
	for i, st := range htbForwardOrder {
		if st == s {
			return i+1 < len(htbForwardOrder) && htbForwardOrder[i+1] == next
		}
	}
	return false
}

// HTBFundsPaymentStatus tracks the drawdown payment independently of the
// claim state machine. A failed provider event reverts processing back to
// pending without rewinding the machine itself.

type HTBFundsPaymentStatus string

const (
	HTBFundsPaymentPending    HTBFundsPaymentStatus = "pending"
	HTBFundsPaymentProcessing HTBFundsPaymentStatus = "processing"
	HTBFundsPaymentReceived   HTBFundsPaymentStatus = "received"
)

// HTBStatusUpdate is one append-only history entry. The last entry's
// NewStatus always equals the claim's current status.

type HTBStatusUpdate struct {
	ID             string         `json:"id"`
	PreviousStatus HTBClaimStatus `json:"previous_status"`
	NewStatus      HTBClaimStatus `json:"new_status"`
	UpdatedBy      string         `json:"updated_by"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Notes          string         `json:"notes,omitempty"`
}

type HTBDocument struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type HTBNote struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Private   bool      `json:"private"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HTBTransitionChanges are fields that ride along with a status transition:
// codes arrive with their matching states, the approved amount with
// developer processing. Nil/empty fields are left untouched.

type HTBTransitionChanges struct {
	AccessCode           string
	AccessCodeExpiryDate *time.Time
	ClaimCode            string
	ClaimCodeExpiryDate  *time.Time
	ApprovedAmount       *MonetaryAmount
}

// HTBClaim is one Help-to-Buy benefit claim.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (buyer_id-index): buyer_id
//
// StatusHistory, Documents and Notes are embedded lists; the claim is the
// aggregate root and is only mutated through status-update operations.

type HTBClaim struct {
	ID                   string                `json:"id"`
	BuyerID              string                `json:"buyer_id"`
	PropertyID           string                `json:"property_id"`
	RequestedAmount      MonetaryAmount        `json:"requested_amount"`
	ApprovedAmount       *MonetaryAmount       `json:"approved_amount,omitempty"`
	Status               HTBClaimStatus        `json:"status"`
	FundsPaymentStatus   HTBFundsPaymentStatus `json:"funds_payment_status"`
	AccessCode           string                `json:"access_code,omitempty"`
	AccessCodeExpiryDate *time.Time            `json:"access_code_expiry_date,omitempty"`
	ClaimCode            string                `json:"claim_code,omitempty"`
	ClaimCodeExpiryDate  *time.Time            `json:"claim_code_expiry_date,omitempty"`
	ApplicationDate      time.Time             `json:"application_date"`
	LastUpdatedDate      time.Time             `json:"last_updated_date"`
	StatusHistory        []HTBStatusUpdate     `json:"status_history"`
	Documents            []HTBDocument         `json:"documents"`
	Notes                []HTBNote             `json:"notes"`
}
