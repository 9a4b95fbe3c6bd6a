package interfaces

import (
	"context"
	"time"

	"propie_backend/internal/domain/entities"
)

// ValuationStatusUpdate is the review/payment write applied to a
// certificate, compare-and-swap on the current status.

type ValuationStatusUpdate struct {
	Status       entities.ValuationStatus
	QSReviewedAt *time.Time
	QSReviewedBy string
	QSComments   string
	PaidAt       *time.Time
}

// IValuationRepository abstracts DynamoDB persistence for
// ContractorValuation.
//
// The table is keyed (project_id, valuation_number), so Create's conditional
// put doubles as the per-project uniqueness check: a taken number surfaces
// as ErrConditionFailed.

type IValuationRepository interface {
	Create(ctx context.Context, v entities.ContractorValuation) (entities.ContractorValuation, error)
	GetByID(ctx context.Context, id string) (entities.ContractorValuation, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ContractorValuation, error)
	UpdateStatus(ctx context.Context, projectID string, valuationNumber int, expected entities.ValuationStatus, update ValuationStatusUpdate) (entities.ContractorValuation, error)
}
