package usecase

import (
	"context"
	"errors"
	"testing"

	"propie_backend/internal/domain/entities"
	mock_interfaces "propie_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMortgageUseCase_CreateApplication(t *testing.T) {
	loan := entities.MustMonetaryAmount("280000", "EUR")
	value := entities.MustMonetaryAmount("350000", "EUR")

	t.Run("missing buyer or lender", func(t *testing.T) {
		uc := NewMortgageUseCase(nil)
		if _, err := uc.CreateApplication(context.Background(), " ", "tx-1", "Bank of Leinster", loan, value, 30); !errors.Is(err, ErrInvalidMortgageInput) {
			t.Fatalf("expected ErrInvalidMortgageInput, got %v", err)
		}
		if _, err := uc.CreateApplication(context.Background(), "buyer-1", "tx-1", "", loan, value, 30); !errors.Is(err, ErrInvalidMortgageInput) {
			t.Fatalf("expected ErrInvalidMortgageInput, got %v", err)
		}
	})

	t.Run("term bounds", func(t *testing.T) {
		uc := NewMortgageUseCase(nil)
		for _, years := range []int{0, -5, 41} {
			if _, err := uc.CreateApplication(context.Background(), "buyer-1", "tx-1", "Bank of Leinster", loan, value, years); !errors.Is(err, ErrInvalidMortgageInput) {
				t.Fatalf("term %d: expected ErrInvalidMortgageInput, got %v", years, err)
			}
		}
	})

	t.Run("currency mismatch", func(t *testing.T) {
		uc := NewMortgageUseCase(nil)
		gbp := entities.MustMonetaryAmount("280000", "GBP")
		if _, err := uc.CreateApplication(context.Background(), "buyer-1", "tx-1", "Bank of Leinster", gbp, value, 30); !errors.Is(err, entities.ErrCurrencyMismatch) {
			t.Fatalf("expected ErrCurrencyMismatch, got %v", err)
		}
	})

	t.Run("ltv computed as percentage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMortgageApplicationRepository(ctrl)
		uc := NewMortgageUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, app entities.MortgageApplication) (entities.MortgageApplication, error) {
				if app.LTV != "80" {
					t.Fatalf("expected LTV 80, got %s", app.LTV)
				}
				if app.Status != entities.MortgageStatusSubmitted {
					t.Fatalf("expected submitted, got %s", app.Status)
				}
				return app, nil
			})

		app, err := uc.CreateApplication(context.Background(), "buyer-1", "tx-1", "Bank of Leinster", loan, value, 30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.TermYears != 30 {
			t.Fatalf("unexpected application: %+v", app)
		}
	})
}

func TestMortgageUseCase_GetByID(t *testing.T) {
	t.Run("zero value means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMortgageApplicationRepository(ctrl)
		uc := NewMortgageUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "app-404").Return(entities.MortgageApplication{}, nil)

		_, err := uc.GetByID(context.Background(), "app-404")
		if !errors.Is(err, ErrMortgageAppNotFound) {
			t.Fatalf("expected ErrMortgageAppNotFound, got %v", err)
		}
	})
}

func TestLTV(t *testing.T) {
	cases := []struct {
		loan, value, want string
	}{
		{"280000", "350000", "80"},
		{"90000", "100000", "90"},
		{"123456", "350000", "35.27"},
		{"100", "0", "0"},
	}
	for _, tc := range cases {
		got := ltv(entities.MustMonetaryAmount(tc.loan, "EUR").Amount, entities.MustMonetaryAmount(tc.value, "EUR").Amount)
		if got != tc.want {
			t.Fatalf("ltv(%s, %s): expected %s, got %s", tc.loan, tc.value, tc.want, got)
		}
	}
}
