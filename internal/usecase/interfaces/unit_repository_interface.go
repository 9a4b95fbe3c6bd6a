package interfaces

import (
	"context"
	"propie_backend/internal/domain/entities"
)

// IUnitRepository abstracts DynamoDB persistence for Unit.
//
// UpdateStatus is compare-and-swap on the current status. Release only
// succeeds when the unit is reserved by the given buyer (guarded ownership
// check); both return ErrConditionFailed when the guard does not hold.

type IUnitRepository interface {
	GetByID(ctx context.Context, id string) (entities.Unit, error)
	ListByDevelopmentID(ctx context.Context, developmentID string) ([]entities.Unit, error)
	Search(ctx context.Context, criteria entities.UnitSearchCriteria) ([]entities.Unit, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.UnitStatus, reservedBy string) (entities.Unit, error)
	Release(ctx context.Context, id string, buyerID string) (entities.Unit, error)
}
