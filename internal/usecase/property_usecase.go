package usecase

import (
	"context"
	"errors"
	"strings"

	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase/interfaces"
)

var (
	ErrUnitNotFound          = errors.New("unit not found")
	ErrInvalidSearchCriteria = errors.New("invalid search criteria")
)

// IPropertyUseCase exposes read-only property search.

type IPropertyUseCase interface {
	SearchUnits(ctx context.Context, criteria entities.UnitSearchCriteria) ([]entities.Unit, error)
	GetUnit(ctx context.Context, id string) (entities.Unit, error)
}

type PropertyUseCase struct {
	units interfaces.IUnitRepository
}

var _ IPropertyUseCase = (*PropertyUseCase)(nil)

func NewPropertyUseCase(units interfaces.IUnitRepository) *PropertyUseCase {
	return &PropertyUseCase{units: units}
}

func (u *PropertyUseCase) SearchUnits(ctx context.Context, criteria entities.UnitSearchCriteria) ([]entities.Unit, error) {
	if criteria.Status != "" {
		switch criteria.Status {
		case entities.UnitStatusAvailable, entities.UnitStatusReserved, entities.UnitStatusUnderContract, entities.UnitStatusSold:
		default:
			return nil, ErrInvalidSearchCriteria
		}
	}
	if criteria.MinPrice != nil && criteria.MaxPrice != nil {
		ok, err := criteria.MinPrice.LessThanOrEqual(*criteria.MaxPrice)
		if err != nil || !ok {
			return nil, ErrInvalidSearchCriteria
		}
	}
	if criteria.MinBedrooms < 0 {
		return nil, ErrInvalidSearchCriteria
	}
	return u.units.Search(ctx, criteria)
}

func (u *PropertyUseCase) GetUnit(ctx context.Context, id string) (entities.Unit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Unit{}, ErrUnitNotFound
	}
	unit, err := u.units.GetByID(ctx, id)
	if err != nil {
		return entities.Unit{}, err
	}
	if unit.ID == "" {
		return entities.Unit{}, ErrUnitNotFound
	}
	return unit, nil
}
