package interfaces

import (
	"context"
	"propie_backend/internal/domain/entities"
)

// IHTBClaimRepository abstracts DynamoDB persistence for HTBClaim.
//
// Status writes are compare-and-swap on the current status: the update only
// lands when the stored status still equals the expected one, otherwise
// ErrConditionFailed is returned and nothing changes. History entries,
// documents and notes are append-only.

type IHTBClaimRepository interface {
	Create(ctx context.Context, claim entities.HTBClaim) (entities.HTBClaim, error)
	GetByID(ctx context.Context, id string) (entities.HTBClaim, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]entities.HTBClaim, error)
	ApplyTransition(ctx context.Context, claimID string, expected entities.HTBClaimStatus, update entities.HTBStatusUpdate, changes entities.HTBTransitionChanges) (entities.HTBClaim, error)
	UpdateFundsPaymentStatus(ctx context.Context, claimID string, expected, next entities.HTBFundsPaymentStatus) (entities.HTBClaim, error)
	AddDocument(ctx context.Context, claimID string, doc entities.HTBDocument) (entities.HTBClaim, error)
	AddNote(ctx context.Context, claimID string, note entities.HTBNote) (entities.HTBClaim, error)
}
