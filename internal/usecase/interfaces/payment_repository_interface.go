package interfaces

import (
	"context"
	"propie_backend/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment records.
//
// Create is keyed by the provider event id with a conditional put. When the
// id was already recorded the stored record is returned with created=false
// and no write happens; this is the processed-events set that keeps webhook
// reconciliation idempotent under at-least-once delivery.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (stored entities.Payment, created bool, err error)
	GetByEventID(ctx context.Context, eventID string) (entities.Payment, error)
	ListByTransactionID(ctx context.Context, transactionID string) ([]entities.Payment, error)
}
