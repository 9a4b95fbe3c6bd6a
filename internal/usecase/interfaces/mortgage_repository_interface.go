package interfaces

import (
	"context"
	"propie_backend/internal/domain/entities"
)

// IMortgageApplicationRepository abstracts DynamoDB persistence for
// MortgageApplication.

type IMortgageApplicationRepository interface {
	Create(ctx context.Context, app entities.MortgageApplication) (entities.MortgageApplication, error)
	GetByID(ctx context.Context, id string) (entities.MortgageApplication, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]entities.MortgageApplication, error)
}
