package usecase

import (
	"context"
	"errors"
	"testing"

	"propie_backend/internal/domain/entities"
	mock_interfaces "propie_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPropertyUseCase_SearchUnits(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewPropertyUseCase(nil)
		_, err := uc.SearchUnits(context.Background(), entities.UnitSearchCriteria{Status: entities.UnitStatus("bogus")})
		if !errors.Is(err, ErrInvalidSearchCriteria) {
			t.Fatalf("expected ErrInvalidSearchCriteria, got %v", err)
		}
	})

	t.Run("inverted price range", func(t *testing.T) {
		uc := NewPropertyUseCase(nil)
		minPrice := entities.MustMonetaryAmount("400000", "EUR")
		maxPrice := entities.MustMonetaryAmount("300000", "EUR")
		_, err := uc.SearchUnits(context.Background(), entities.UnitSearchCriteria{MinPrice: &minPrice, MaxPrice: &maxPrice})
		if !errors.Is(err, ErrInvalidSearchCriteria) {
			t.Fatalf("expected ErrInvalidSearchCriteria, got %v", err)
		}
	})

	t.Run("mixed currency range", func(t *testing.T) {
		uc := NewPropertyUseCase(nil)
		minPrice := entities.MustMonetaryAmount("300000", "EUR")
		maxPrice := entities.MustMonetaryAmount("400000", "GBP")
		_, err := uc.SearchUnits(context.Background(), entities.UnitSearchCriteria{MinPrice: &minPrice, MaxPrice: &maxPrice})
		if !errors.Is(err, ErrInvalidSearchCriteria) {
			t.Fatalf("expected ErrInvalidSearchCriteria, got %v", err)
		}
	})

	t.Run("valid criteria delegates to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		units := mock_interfaces.NewMockIUnitRepository(ctrl)
		uc := NewPropertyUseCase(units)

		criteria := entities.UnitSearchCriteria{DevelopmentID: "dev-1", Status: entities.UnitStatusAvailable, MinBedrooms: 2}
		units.EXPECT().Search(gomock.Any(), criteria).Return([]entities.Unit{{ID: "u1"}}, nil)

		got, err := uc.SearchUnits(context.Background(), criteria)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "u1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestPropertyUseCase_GetUnit(t *testing.T) {
	t.Run("zero value means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		units := mock_interfaces.NewMockIUnitRepository(ctrl)
		uc := NewPropertyUseCase(units)

		units.EXPECT().GetByID(gomock.Any(), "u-404").Return(entities.Unit{}, nil)

		_, err := uc.GetUnit(context.Background(), "u-404")
		if !errors.Is(err, ErrUnitNotFound) {
			t.Fatalf("expected ErrUnitNotFound, got %v", err)
		}
	})
}
