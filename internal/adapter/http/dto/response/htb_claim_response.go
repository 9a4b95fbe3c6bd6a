package response

import (
	"time"

	"propie_backend/internal/domain/entities"
)

type HTBStatusUpdateResponse struct {
	ID             string    `json:"id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	UpdatedBy      string    `json:"updated_by"`
	UpdatedAt      time.Time `json:"updated_at"`
	Notes          string    `json:"notes,omitempty"`
}

type HTBDocumentResponse struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type HTBNoteResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Private   bool      `json:"private"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type HTBClaimResponse struct {
	ID                   string                    `json:"id"`
	BuyerID              string                    `json:"buyer_id"`
	PropertyID           string                    `json:"property_id"`
	RequestedAmount      MoneyResponse             `json:"requested_amount"`
	ApprovedAmount       *MoneyResponse            `json:"approved_amount,omitempty"`
	Status               string                    `json:"status"`
	FundsPaymentStatus   string                    `json:"funds_payment_status"`
	AccessCode           string                    `json:"access_code,omitempty"`
	AccessCodeExpiryDate *time.Time                `json:"access_code_expiry_date,omitempty"`
	ClaimCode            string                    `json:"claim_code,omitempty"`
	ClaimCodeExpiryDate  *time.Time                `json:"claim_code_expiry_date,omitempty"`
	ApplicationDate      time.Time                 `json:"application_date"`
	LastUpdatedDate      time.Time                 `json:"last_updated_date"`
	StatusHistory        []HTBStatusUpdateResponse `json:"status_history"`
	Documents            []HTBDocumentResponse     `json:"documents"`
	Notes                []HTBNoteResponse         `json:"notes"`
}

func FromHTBClaim(c entities.HTBClaim) HTBClaimResponse {
	history := make([]HTBStatusUpdateResponse, 0, len(c.StatusHistory))
	for _, h := range c.StatusHistory {
		history = append(history, HTBStatusUpdateResponse{
			ID:             h.ID,
			PreviousStatus: string(h.PreviousStatus),
			NewStatus:      string(h.NewStatus),
			UpdatedBy:      h.UpdatedBy,
			UpdatedAt:      h.UpdatedAt,
			Notes:          h.Notes,
		})
	}
	docs := make([]HTBDocumentResponse, 0, len(c.Documents))
	for _, d := range c.Documents {
		docs = append(docs, HTBDocumentResponse{
			ID:         d.ID,
			URL:        d.URL,
			Name:       d.Name,
			Type:       d.Type,
			UploadedBy: d.UploadedBy,
			UploadedAt: d.UploadedAt,
		})
	}
	notes := make([]HTBNoteResponse, 0, len(c.Notes))
	for _, n := range c.Notes {
		notes = append(notes, HTBNoteResponse{
			ID:        n.ID,
			Content:   n.Content,
			Private:   n.Private,
			AuthorID:  n.AuthorID,
			CreatedAt: n.CreatedAt,
		})
	}
	return HTBClaimResponse{
		ID:                   c.ID,
		BuyerID:              c.BuyerID,
		PropertyID:           c.PropertyID,
		RequestedAmount:      FromMonetaryAmount(c.RequestedAmount),
		ApprovedAmount:       FromMonetaryAmountPtr(c.ApprovedAmount),
		Status:               string(c.Status),
		FundsPaymentStatus:   string(c.FundsPaymentStatus),
		AccessCode:           c.AccessCode,
		AccessCodeExpiryDate: c.AccessCodeExpiryDate,
		ClaimCode:            c.ClaimCode,
		ClaimCodeExpiryDate:  c.ClaimCodeExpiryDate,
		ApplicationDate:      c.ApplicationDate,
		LastUpdatedDate:      c.LastUpdatedDate,
		StatusHistory:        history,
		Documents:            docs,
		Notes:                notes,
	}
}

func FromHTBClaims(claims []entities.HTBClaim) []HTBClaimResponse {
	out := make([]HTBClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, FromHTBClaim(c))
	}
	return out
}
