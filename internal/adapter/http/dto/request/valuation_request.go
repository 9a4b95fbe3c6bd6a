package request

import (
	"strings"
	"time"

	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase"

	"github.com/shopspring/decimal"
)

type ValuationWorkItemRequest struct {
	Description string       `json:"description" binding:"required"`
	Quantity    string       `json:"quantity"`
	Amount      MoneyRequest `json:"amount" binding:"required"`
}

type MaterialOnSiteRequest struct {
	Description string       `json:"description" binding:"required"`
	Value       MoneyRequest `json:"value" binding:"required"`
}

type ValuationVariationRequest struct {
	Reference string       `json:"reference" binding:"required"`
	Type      string       `json:"type" binding:"required"`
	Amount    MoneyRequest `json:"amount" binding:"required"`
	Approved  bool         `json:"approved"`
}

// SubmitValuationRequest is a contractor's payment-certificate submission.
// Gross, retention and net are computed server side and never accepted from
// the wire.

type SubmitValuationRequest struct {
	ProjectID           string                      `json:"project_id" binding:"required"`
	ValuationNumber     int                         `json:"valuation_number" binding:"required"`
	PeriodFrom          time.Time                   `json:"period_from" binding:"required"`
	PeriodTo            time.Time                   `json:"period_to" binding:"required"`
	ContractorID        string                      `json:"contractor_id" binding:"required"`
	ContractorNotes     string                      `json:"contractor_notes" binding:"required"`
	Currency            string                      `json:"currency" binding:"required"`
	RetentionPercentage string                      `json:"retention_percentage" binding:"required"`
	WorkCompleted       []ValuationWorkItemRequest  `json:"work_completed" binding:"required"`
	MaterialsOnSite     []MaterialOnSiteRequest     `json:"materials_on_site"`
	Variations          []ValuationVariationRequest `json:"variations"`
	AssignedQSID        string                      `json:"assigned_qs_id"`
}

func (r SubmitValuationRequest) ToSubmission() (usecase.ValuationSubmission, error) {
	retention, err := decimal.NewFromString(strings.TrimSpace(r.RetentionPercentage))
	if err != nil {
		return usecase.ValuationSubmission{}, ErrInvalidMonetaryAmount
	}

	work := make([]entities.ValuationWorkItem, 0, len(r.WorkCompleted))
	for _, w := range r.WorkCompleted {
		amount, err := w.Amount.ToMonetaryAmount()
		if err != nil {
			return usecase.ValuationSubmission{}, err
		}
		work = append(work, entities.ValuationWorkItem{
			Description: w.Description,
			Quantity:    w.Quantity,
			Amount:      amount,
		})
	}
	materials := make([]entities.MaterialOnSite, 0, len(r.MaterialsOnSite))
	for _, m := range r.MaterialsOnSite {
		value, err := m.Value.ToMonetaryAmount()
		if err != nil {
			return usecase.ValuationSubmission{}, err
		}
		materials = append(materials, entities.MaterialOnSite{
			Description: m.Description,
			Value:       value,
		})
	}
	variations := make([]entities.ValuationVariation, 0, len(r.Variations))
	for _, v := range r.Variations {
		amount, err := v.Amount.ToMonetaryAmount()
		if err != nil {
			return usecase.ValuationSubmission{}, err
		}
		variations = append(variations, entities.ValuationVariation{
			Reference: v.Reference,
			Type:      entities.VariationType(v.Type),
			Amount:    amount,
			Approved:  v.Approved,
		})
	}

	return usecase.ValuationSubmission{
		ProjectID:           r.ProjectID,
		ValuationNumber:     r.ValuationNumber,
		PeriodFrom:          r.PeriodFrom,
		PeriodTo:            r.PeriodTo,
		ContractorID:        r.ContractorID,
		ContractorNotes:     r.ContractorNotes,
		Currency:            strings.ToUpper(strings.TrimSpace(r.Currency)),
		RetentionPercentage: retention,
		WorkCompleted:       work,
		MaterialsOnSite:     materials,
		Variations:          variations,
		AssignedQSID:        r.AssignedQSID,
	}, nil
}

type ReviewValuationRequest struct {
	Decision   string `json:"decision" binding:"required"`
	ReviewerID string `json:"reviewer_id" binding:"required"`
	Comments   string `json:"comments"`
}
