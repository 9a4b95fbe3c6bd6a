package usecase

import (
	"context"
	"errors"
	"testing"

	"propie_backend/internal/domain/entities"
	mock_interfaces "propie_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportingUseCase_DevelopmentSales(t *testing.T) {
	t.Run("blank development id", func(t *testing.T) {
		uc := NewReportingUseCase(nil, nil, nil)
		_, err := uc.DevelopmentSales(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidReportScope) {
			t.Fatalf("expected ErrInvalidReportScope, got %v", err)
		}
	})

	t.Run("empty development yields zero rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		units := mock_interfaces.NewMockIUnitRepository(ctrl)
		uc := NewReportingUseCase(units, nil, nil)

		units.EXPECT().ListByDevelopmentID(gomock.Any(), "dev-1").Return(nil, nil)

		summary, err := uc.DevelopmentSales(context.Background(), "dev-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalUnits != 0 || summary.SoldRate != "0" || summary.ReservedRate != "0" {
			t.Fatalf("expected zeroed summary, got %+v", summary)
		}
	})

	t.Run("counts and rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		units := mock_interfaces.NewMockIUnitRepository(ctrl)
		uc := NewReportingUseCase(units, nil, nil)

		units.EXPECT().ListByDevelopmentID(gomock.Any(), "dev-1").Return([]entities.Unit{
			{ID: "u1", Status: entities.UnitStatusSold},
			{ID: "u2", Status: entities.UnitStatusSold},
			{ID: "u3", Status: entities.UnitStatusReserved},
			{ID: "u4", Status: entities.UnitStatusAvailable},
			{ID: "u5", Status: entities.UnitStatusUnderContract},
			{ID: "u6", Status: entities.UnitStatusAvailable},
		}, nil)

		summary, err := uc.DevelopmentSales(context.Background(), "dev-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalUnits != 6 {
			t.Fatalf("expected 6 units, got %d", summary.TotalUnits)
		}
		if summary.CountsByStatus[entities.UnitStatusAvailable] != 2 {
			t.Fatalf("unexpected counts: %+v", summary.CountsByStatus)
		}
		if summary.SoldRate != "0.3333" {
			t.Fatalf("expected sold rate 0.3333, got %s", summary.SoldRate)
		}
		if summary.ReservedRate != "0.1667" {
			t.Fatalf("expected reserved rate 0.1667, got %s", summary.ReservedRate)
		}
	})
}

func TestReportingUseCase_ProjectValuations(t *testing.T) {
	t.Run("certified and retention only count approved and paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		valuations := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewReportingUseCase(nil, valuations, nil)

		valuations.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return([]entities.ContractorValuation{
			{Status: entities.ValuationStatusPaid, NetAmount: entities.MustMonetaryAmount("100000", "EUR"), RetentionAmount: entities.MustMonetaryAmount("5000", "EUR")},
			{Status: entities.ValuationStatusApproved, NetAmount: entities.MustMonetaryAmount("50000", "EUR"), RetentionAmount: entities.MustMonetaryAmount("2500", "EUR")},
			{Status: entities.ValuationStatusRejected, NetAmount: entities.MustMonetaryAmount("999999", "EUR"), RetentionAmount: entities.MustMonetaryAmount("9999", "EUR")},
			{Status: entities.ValuationStatusSubmitted, NetAmount: entities.MustMonetaryAmount("888888", "EUR"), RetentionAmount: entities.MustMonetaryAmount("8888", "EUR")},
		}, nil)

		summary, err := uc.ProjectValuations(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalValuations != 4 || summary.ApprovalRate != "0.5" {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		if summary.CertifiedToDate == nil || summary.CertifiedToDate.Amount.String() != "150000" {
			t.Fatalf("expected certified 150000, got %+v", summary.CertifiedToDate)
		}
		if summary.RetentionHeld == nil || summary.RetentionHeld.Amount.String() != "7500" {
			t.Fatalf("expected retention 7500, got %+v", summary.RetentionHeld)
		}
	})

	t.Run("no valuations leaves totals nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		valuations := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewReportingUseCase(nil, valuations, nil)

		valuations.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)

		summary, err := uc.ProjectValuations(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.ApprovalRate != "0" || summary.CertifiedToDate != nil || summary.RetentionHeld != nil {
			t.Fatalf("expected empty summary, got %+v", summary)
		}
	})
}

func TestReportingUseCase_TransactionFunnel(t *testing.T) {
	t.Run("rates over all transactions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewReportingUseCase(nil, nil, transactions)

		transactions.EXPECT().ListAll(gomock.Any()).Return([]entities.Transaction{
			{Status: entities.TxStatusCompleted},
			{Status: entities.TxStatusCancelled},
			{Status: entities.TxStatusReserved},
			{Status: entities.TxStatusEnquiry},
		}, nil)

		summary, err := uc.TransactionFunnel(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalTransactions != 4 || summary.CompletionRate != "0.25" || summary.CancellationRate != "0.25" {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})

	t.Run("empty platform yields zero rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewReportingUseCase(nil, nil, transactions)

		transactions.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		summary, err := uc.TransactionFunnel(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.CompletionRate != "0" || summary.CancellationRate != "0" {
			t.Fatalf("expected zero rates, got %+v", summary)
		}
	})
}
