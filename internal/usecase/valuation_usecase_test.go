package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase/interfaces"
	mock_interfaces "propie_backend/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validSubmission() ValuationSubmission {
	return ValuationSubmission{
		ProjectID:           "proj-1",
		ValuationNumber:     1,
		PeriodFrom:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodTo:            time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		ContractorID:        "contractor-1",
		ContractorNotes:     "january works",
		Currency:            "EUR",
		RetentionPercentage: decimal.NewFromInt(5),
		WorkCompleted: []entities.ValuationWorkItem{
			{Description: "substructure", Amount: entities.MustMonetaryAmount("250000", "EUR")},
			{Description: "superstructure", Amount: entities.MustMonetaryAmount("175000", "EUR")},
		},
	}
}

func TestValuationUseCase_SubmitValuation_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ValuationSubmission)
		field  string
	}{
		{"missing project id", func(s *ValuationSubmission) { s.ProjectID = " " }, "project_id"},
		{"non-positive number", func(s *ValuationSubmission) { s.ValuationNumber = 0 }, "valuation_number"},
		{"missing contractor id", func(s *ValuationSubmission) { s.ContractorID = "" }, "contractor_id"},
		{"no work items", func(s *ValuationSubmission) { s.WorkCompleted = nil }, "work_completed"},
		{"missing currency", func(s *ValuationSubmission) { s.Currency = "" }, "currency"},
		{"negative retention", func(s *ValuationSubmission) { s.RetentionPercentage = decimal.NewFromInt(-1) }, "retention_percentage"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewValuationUseCase(nil, nil)
			in := validSubmission()
			tc.mutate(&in)
			_, err := uc.SubmitValuation(context.Background(), in)
			if !errors.Is(err, ErrValuationValidation) {
				t.Fatalf("expected ErrValuationValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("expected error naming %q, got %q", tc.field, err.Error())
			}
		})
	}
}

func TestValuationUseCase_SubmitValuation(t *testing.T) {
	t.Run("first certificate computes gross retention net", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewValuationUseCase(repo, nil)

		repo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.ContractorValuation) (entities.ContractorValuation, error) {
				if v.GrossValuation.Amount.String() != "425000" {
					t.Fatalf("expected gross 425000, got %s", v.GrossValuation.Amount)
				}
				if v.RetentionAmount.Amount.String() != "21250" {
					t.Fatalf("expected retention 21250, got %s", v.RetentionAmount.Amount)
				}
				if v.NetAmount.Amount.String() != "403750" {
					t.Fatalf("expected net 403750, got %s", v.NetAmount.Amount)
				}
				if v.Status != entities.ValuationStatusSubmitted {
					t.Fatalf("expected submitted, got %s", v.Status)
				}
				return v, nil
			})

		created, err := uc.SubmitValuation(context.Background(), validSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.PreviousCertificates.Amount.String() != "0" {
			t.Fatalf("expected zero previous certificates, got %s", created.PreviousCertificates.Amount)
		}
	})

	t.Run("previous certificates only count approved and paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewValuationUseCase(repo, nil)

		prior := []entities.ContractorValuation{
			{Status: entities.ValuationStatusPaid, NetAmount: entities.MustMonetaryAmount("100000", "EUR")},
			{Status: entities.ValuationStatusApproved, NetAmount: entities.MustMonetaryAmount("50000", "EUR")},
			{Status: entities.ValuationStatusRejected, NetAmount: entities.MustMonetaryAmount("999999", "EUR")},
			{Status: entities.ValuationStatusSubmitted, NetAmount: entities.MustMonetaryAmount("888888", "EUR")},
		}
		repo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(prior, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.ContractorValuation) (entities.ContractorValuation, error) {
				if v.PreviousCertificates.Amount.String() != "150000" {
					t.Fatalf("expected previous 150000, got %s", v.PreviousCertificates.Amount)
				}
				// 425000 - 150000 - 21250
				if v.NetAmount.Amount.String() != "253750" {
					t.Fatalf("expected net 253750, got %s", v.NetAmount.Amount)
				}
				return v, nil
			})

		if _, err := uc.SubmitValuation(context.Background(), validSubmission()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("taken valuation number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewValuationUseCase(repo, nil)

		repo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ContractorValuation{}, interfaces.ErrConditionFailed)

		_, err := uc.SubmitValuation(context.Background(), validSubmission())
		if !errors.Is(err, ErrValuationNumberTaken) {
			t.Fatalf("expected ErrValuationNumberTaken, got %v", err)
		}
	})

	t.Run("qs notification failure does not fail submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIValuationRepository(ctrl)
		notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewValuationUseCase(repo, notifications)

		in := validSubmission()
		in.AssignedQSID = "qs-1"

		repo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.ContractorValuation) (entities.ContractorValuation, error) { return v, nil })
		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("notify down"))

		if _, err := uc.SubmitValuation(context.Background(), in); err != nil {
			t.Fatalf("expected submission to survive notification failure, got %v", err)
		}
	})
}

func TestValuationUseCase_ReviewValuation(t *testing.T) {
	submitted := entities.ContractorValuation{
		ID:              "val-1",
		ProjectID:       "proj-1",
		ValuationNumber: 3,
		Status:          entities.ValuationStatusSubmitted,
	}

	t.Run("unknown decision", func(t *testing.T) {
		uc := NewValuationUseCase(nil, nil)
		_, err := uc.ReviewValuation(context.Background(), "val-1", "maybe", "qs-1", "")
		if !errors.Is(err, ErrInvalidReviewDecision) {
			t.Fatalf("expected ErrInvalidReviewDecision, got %v", err)
		}
	})

	t.Run("approve a submitted valuation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewValuationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(submitted, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "proj-1", 3, entities.ValuationStatusSubmitted, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ int, _ entities.ValuationStatus, update interfaces.ValuationStatusUpdate) (entities.ContractorValuation, error) {
				if update.Status != entities.ValuationStatusApproved || update.QSReviewedBy != "qs-1" || update.QSReviewedAt == nil {
					t.Fatalf("unexpected update: %+v", update)
				}
				out := submitted
				out.Status = update.Status
				return out, nil
			})

		got, err := uc.ReviewValuation(context.Background(), "val-1", "Approve", "qs-1", "looks right")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ValuationStatusApproved {
			t.Fatalf("expected approved, got %s", got.Status)
		}
	})

	t.Run("paid valuation is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewValuationUseCase(repo, nil)

		paid := submitted
		paid.Status = entities.ValuationStatusPaid
		repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(paid, nil)

		_, err := uc.ReviewValuation(context.Background(), "val-1", "reject", "qs-1", "")
		if !errors.Is(err, ErrValuationImmutable) {
			t.Fatalf("expected ErrValuationImmutable, got %v", err)
		}
	})

	t.Run("only submitted is reviewable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewValuationUseCase(repo, nil)

		rejected := submitted
		rejected.Status = entities.ValuationStatusRejected
		repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(rejected, nil)

		_, err := uc.ReviewValuation(context.Background(), "val-1", "approve", "qs-1", "")
		if !errors.Is(err, ErrValuationNotSubmitted) {
			t.Fatalf("expected ErrValuationNotSubmitted, got %v", err)
		}
	})

	t.Run("lost race surfaces concurrent modification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewValuationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(submitted, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "proj-1", 3, entities.ValuationStatusSubmitted, gomock.Any()).
			Return(entities.ContractorValuation{}, interfaces.ErrConditionFailed)

		_, err := uc.ReviewValuation(context.Background(), "val-1", "approve", "qs-1", "")
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestValuationUseCase_MarkPaid(t *testing.T) {
	approved := entities.ContractorValuation{
		ID:              "val-1",
		ProjectID:       "proj-1",
		ValuationNumber: 3,
		Status:          entities.ValuationStatusApproved,
	}

	t.Run("approved moves to paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewValuationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(approved, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "proj-1", 3, entities.ValuationStatusApproved, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ int, _ entities.ValuationStatus, update interfaces.ValuationStatusUpdate) (entities.ContractorValuation, error) {
				if update.Status != entities.ValuationStatusPaid || update.PaidAt == nil {
					t.Fatalf("unexpected update: %+v", update)
				}
				out := approved
				out.Status = update.Status
				return out, nil
			})

		got, err := uc.MarkPaid(context.Background(), "val-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ValuationStatusPaid {
			t.Fatalf("expected paid, got %s", got.Status)
		}
	})

	t.Run("submitted cannot be paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewValuationUseCase(repo, nil)

		submitted := approved
		submitted.Status = entities.ValuationStatusSubmitted
		repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(submitted, nil)

		_, err := uc.MarkPaid(context.Background(), "val-1")
		if !errors.Is(err, ErrValuationNotApproved) {
			t.Fatalf("expected ErrValuationNotApproved, got %v", err)
		}
	})

	t.Run("paid twice is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewValuationUseCase(repo, nil)

		paid := approved
		paid.Status = entities.ValuationStatusPaid
		repo.EXPECT().GetByID(gomock.Any(), "val-1").Return(paid, nil)

		_, err := uc.MarkPaid(context.Background(), "val-1")
		if !errors.Is(err, ErrValuationImmutable) {
			t.Fatalf("expected ErrValuationImmutable, got %v", err)
		}
	})
}

func TestValuationUseCase_GetByID(t *testing.T) {
	t.Run("zero value means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIValuationRepository(ctrl)
		uc := NewValuationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "val-404").Return(entities.ContractorValuation{}, nil)

		_, err := uc.GetByID(context.Background(), "val-404")
		if !errors.Is(err, ErrValuationNotFound) {
			t.Fatalf("expected ErrValuationNotFound, got %v", err)
		}
	})
}
