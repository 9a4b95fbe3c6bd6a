package request

import (
	"time"

	"propie_backend/internal/domain/entities"
)

type CreateHTBClaimRequest struct {
	BuyerID         string       `json:"buyer_id" binding:"required"`
	PropertyID      string       `json:"property_id" binding:"required"`
	RequestedAmount MoneyRequest `json:"requested_amount" binding:"required"`
}

// UpdateHTBClaimStatusRequest drives one state-machine transition. The
// optional fields ride along with the status they belong to (codes, approved
// amount); the usecase ignores fields that do not apply.

type UpdateHTBClaimStatusRequest struct {
	NewStatus            string        `json:"new_status" binding:"required"`
	ActorID              string        `json:"actor_id" binding:"required"`
	Note                 string        `json:"note"`
	AccessCode           string        `json:"access_code"`
	AccessCodeExpiryDate *time.Time    `json:"access_code_expiry_date"`
	ClaimCode            string        `json:"claim_code"`
	ClaimCodeExpiryDate  *time.Time    `json:"claim_code_expiry_date"`
	ApprovedAmount       *MoneyRequest `json:"approved_amount"`
}

func (r UpdateHTBClaimStatusRequest) ToTransitionChanges() (entities.HTBTransitionChanges, error) {
	changes := entities.HTBTransitionChanges{
		AccessCode:           r.AccessCode,
		AccessCodeExpiryDate: r.AccessCodeExpiryDate,
		ClaimCode:            r.ClaimCode,
		ClaimCodeExpiryDate:  r.ClaimCodeExpiryDate,
	}
	if r.ApprovedAmount != nil {
		approved, err := r.ApprovedAmount.ToMonetaryAmount()
		if err != nil {
			return entities.HTBTransitionChanges{}, err
		}
		changes.ApprovedAmount = &approved
	}
	return changes, nil
}

type AddHTBDocumentRequest struct {
	URL        string `json:"url" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type" binding:"required"`
	UploadedBy string `json:"uploaded_by" binding:"required"`
}

type AddHTBNoteRequest struct {
	Content  string `json:"content" binding:"required"`
	Private  bool   `json:"private"`
	AuthorID string `json:"author_id" binding:"required"`
}

type SubmitHTBDrawdownRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
}
