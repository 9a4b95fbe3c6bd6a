package entities

import "time"

// ValuationStatus is the lifecycle of a contractor payment certificate.
//
// draft is reserved for contractor-side staging; submissions through the API
// always enter at submitted. paid certificates are immutable.

type ValuationStatus string

const (
	ValuationStatusDraft     ValuationStatus = "draft"
	ValuationStatusSubmitted ValuationStatus = "submitted"
	ValuationStatusApproved  ValuationStatus = "approved"
	ValuationStatusRejected  ValuationStatus = "rejected"
	ValuationStatusPaid      ValuationStatus = "paid"
)

// ValuationWorkItem is one quantity-surveyed line item of completed work.

type ValuationWorkItem struct {
	Description string         `json:"description"`
	Quantity    string         `json:"quantity,omitempty"`
	Amount      MonetaryAmount `json:"amount"`
}

// MaterialOnSite is unfixed material delivered but not yet built in.

type MaterialOnSite struct {
	Description string         `json:"description"`
	Value       MonetaryAmount `json:"value"`
}

type VariationType string

const (
	VariationAddition VariationType = "addition"
	VariationOmission VariationType = "omission"
)

// ValuationVariation is a signed contract variation claimed in this
// certificate. Only approved variations contribute to the gross valuation;
// omissions contribute negatively.

type ValuationVariation struct {
	Reference string         `json:"reference"`
	Type      VariationType  `json:"type"`
	Amount    MonetaryAmount `json:"amount"`
	Approved  bool           `json:"approved"`
}

// ContractorValuation is one periodic payment-certificate request from a
// contractor to the quantity surveyor.
//
// Storage model (DynamoDB):
//   - PK: project_id, SK: valuation_number (uniqueness per project by key)
//   - GSI1 (id-index): id
//
// Invariants held on every persisted record:
//   - retention_amount = round(gross_valuation * retention_percentage / 100)
//   - net_amount = (gross_valuation - previous_certificates) - retention_amount

type ContractorValuation struct {
	ID                   string               `json:"id"`
	ProjectID            string               `json:"project_id"`
	ValuationNumber      int                  `json:"valuation_number"`
	PeriodFrom           time.Time            `json:"period_from"`
	PeriodTo             time.Time            `json:"period_to"`
	ContractorID         string               `json:"contractor_id"`
	ContractorNotes      string               `json:"contractor_notes"`
	WorkCompleted        []ValuationWorkItem  `json:"work_completed"`
	MaterialsOnSite      []MaterialOnSite     `json:"materials_on_site"`
	Variations           []ValuationVariation `json:"variations"`
	GrossValuation       MonetaryAmount       `json:"gross_valuation"`
	RetentionPercentage  string               `json:"retention_percentage"`
	RetentionAmount      MonetaryAmount       `json:"retention_amount"`
	PreviousCertificates MonetaryAmount       `json:"previous_certificates"`
	NetAmount            MonetaryAmount       `json:"net_amount"`
	Status               ValuationStatus      `json:"status"`
	QSReviewedAt         *time.Time           `json:"qs_reviewed_at,omitempty"`
	QSReviewedBy         string               `json:"qs_reviewed_by,omitempty"`
	QSComments           string               `json:"qs_comments,omitempty"`
	PaidAt               *time.Time           `json:"paid_at,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}
