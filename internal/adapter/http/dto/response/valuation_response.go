package response

import (
	"time"

	"propie_backend/internal/domain/entities"
)

type ValuationWorkItemResponse struct {
	Description string        `json:"description"`
	Quantity    string        `json:"quantity,omitempty"`
	Amount      MoneyResponse `json:"amount"`
}

type MaterialOnSiteResponse struct {
	Description string        `json:"description"`
	Value       MoneyResponse `json:"value"`
}

type ValuationVariationResponse struct {
	Reference string        `json:"reference"`
	Type      string        `json:"type"`
	Amount    MoneyResponse `json:"amount"`
	Approved  bool          `json:"approved"`
}

type ValuationResponse struct {
	ID                   string                       `json:"id"`
	ProjectID            string                       `json:"project_id"`
	ValuationNumber      int                          `json:"valuation_number"`
	PeriodFrom           time.Time                    `json:"period_from"`
	PeriodTo             time.Time                    `json:"period_to"`
	ContractorID         string                       `json:"contractor_id"`
	ContractorNotes      string                       `json:"contractor_notes"`
	WorkCompleted        []ValuationWorkItemResponse  `json:"work_completed"`
	MaterialsOnSite      []MaterialOnSiteResponse     `json:"materials_on_site"`
	Variations           []ValuationVariationResponse `json:"variations"`
	GrossValuation       MoneyResponse                `json:"gross_valuation"`
	RetentionPercentage  string                       `json:"retention_percentage"`
	RetentionAmount      MoneyResponse                `json:"retention_amount"`
	PreviousCertificates MoneyResponse                `json:"previous_certificates"`
	NetAmount            MoneyResponse                `json:"net_amount"`
	Status               string                       `json:"status"`
	QSReviewedAt         *time.Time                   `json:"qs_reviewed_at,omitempty"`
	QSReviewedBy         string                       `json:"qs_reviewed_by,omitempty"`
	QSComments           string                       `json:"qs_comments,omitempty"`
	PaidAt               *time.Time                   `json:"paid_at,omitempty"`
	CreatedAt            time.Time                    `json:"created_at"`
	UpdatedAt            time.Time                    `json:"updated_at"`
}

func FromValuation(v entities.ContractorValuation) ValuationResponse {
	work := make([]ValuationWorkItemResponse, 0, len(v.WorkCompleted))
	for _, w := range v.WorkCompleted {
		work = append(work, ValuationWorkItemResponse{
			Description: w.Description,
			Quantity:    w.Quantity,
			Amount:      FromMonetaryAmount(w.Amount),
		})
	}
	materials := make([]MaterialOnSiteResponse, 0, len(v.MaterialsOnSite))
	for _, m := range v.MaterialsOnSite {
		materials = append(materials, MaterialOnSiteResponse{
			Description: m.Description,
			Value:       FromMonetaryAmount(m.Value),
		})
	}
	variations := make([]ValuationVariationResponse, 0, len(v.Variations))
	for _, va := range v.Variations {
		variations = append(variations, ValuationVariationResponse{
			Reference: va.Reference,
			Type:      string(va.Type),
			Amount:    FromMonetaryAmount(va.Amount),
			Approved:  va.Approved,
		})
	}
	return ValuationResponse{
		ID:                   v.ID,
		ProjectID:            v.ProjectID,
		ValuationNumber:      v.ValuationNumber,
		PeriodFrom:           v.PeriodFrom,
		PeriodTo:             v.PeriodTo,
		ContractorID:         v.ContractorID,
		ContractorNotes:      v.ContractorNotes,
		WorkCompleted:        work,
		MaterialsOnSite:      materials,
		Variations:           variations,
		GrossValuation:       FromMonetaryAmount(v.GrossValuation),
		RetentionPercentage:  v.RetentionPercentage,
		RetentionAmount:      FromMonetaryAmount(v.RetentionAmount),
		PreviousCertificates: FromMonetaryAmount(v.PreviousCertificates),
		NetAmount:            FromMonetaryAmount(v.NetAmount),
		Status:               string(v.Status),
		QSReviewedAt:         v.QSReviewedAt,
		QSReviewedBy:         v.QSReviewedBy,
		QSComments:           v.QSComments,
		PaidAt:               v.PaidAt,
		CreatedAt:            v.CreatedAt,
		UpdatedAt:            v.UpdatedAt,
	}
}

func FromValuations(valuations []entities.ContractorValuation) []ValuationResponse {
	out := make([]ValuationResponse, 0, len(valuations))
	for _, v := range valuations {
		out = append(out, FromValuation(v))
	}
	return out
}
