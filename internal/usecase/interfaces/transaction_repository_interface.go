package interfaces

import (
	"context"
	"propie_backend/internal/domain/entities"
)

// TransactionStatusUpdate is the write applied by a validated status change.
// Nil financial fields are left untouched.

type TransactionStatusUpdate struct {
	Status           entities.TransactionStatus
	Stage            entities.TransactionStage
	DepositPaid      *entities.MonetaryAmount
	TotalPaid        *entities.MonetaryAmount
	MortgageApproved *bool
}

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
//
// UpdateStatus is compare-and-swap on the current status and appends the
// audit event in the same write; ErrConditionFailed means the stored status
// no longer equals expected.

type ITransactionRepository interface {
	Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Transaction, error)
	ListAll(ctx context.Context) ([]entities.Transaction, error)
	UpdateStatus(ctx context.Context, id string, expected entities.TransactionStatus, update TransactionStatusUpdate, event entities.TransactionEvent) (entities.Transaction, error)
}
