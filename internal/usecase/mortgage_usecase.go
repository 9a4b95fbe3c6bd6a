package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMortgageAppNotFound  = errors.New("mortgage application not found")
	ErrInvalidMortgageInput = errors.New("invalid mortgage application input")
)

// IMortgageUseCase exposes mortgage application tracking.

type IMortgageUseCase interface {
	CreateApplication(ctx context.Context, buyerID, transactionID, lender string, loanAmount, propertyValue entities.MonetaryAmount, termYears int) (entities.MortgageApplication, error)
	GetByID(ctx context.Context, id string) (entities.MortgageApplication, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]entities.MortgageApplication, error)
}

type MortgageUseCase struct {
	repo interfaces.IMortgageApplicationRepository
}

var _ IMortgageUseCase = (*MortgageUseCase)(nil)

func NewMortgageUseCase(repo interfaces.IMortgageApplicationRepository) *MortgageUseCase {
	return &MortgageUseCase{repo: repo}
}

func (u *MortgageUseCase) CreateApplication(ctx context.Context, buyerID, transactionID, lender string, loanAmount, propertyValue entities.MonetaryAmount, termYears int) (entities.MortgageApplication, error) {
	buyerID = strings.TrimSpace(buyerID)
	lender = strings.TrimSpace(lender)
	if buyerID == "" || lender == "" {
		return entities.MortgageApplication{}, ErrInvalidMortgageInput
	}
	if termYears <= 0 || termYears > 40 {
		return entities.MortgageApplication{}, ErrInvalidMortgageInput
	}
	if !loanAmount.Amount.IsPositive() || !propertyValue.Amount.IsPositive() {
		return entities.MortgageApplication{}, ErrInvalidMortgageInput
	}
	if loanAmount.Currency != propertyValue.Currency {
		return entities.MortgageApplication{}, entities.ErrCurrencyMismatch
	}

	now := time.Now().UTC()
	app := entities.MortgageApplication{
		ID:            uuid.NewString(),
		BuyerID:       buyerID,
		TransactionID: strings.TrimSpace(transactionID),
		Lender:        lender,
		LoanAmount:    loanAmount,
		PropertyValue: propertyValue,
		TermYears:     termYears,
		LTV:           ltv(loanAmount.Amount, propertyValue.Amount),
		Status:        entities.MortgageStatusSubmitted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, app)
}

func (u *MortgageUseCase) GetByID(ctx context.Context, id string) (entities.MortgageApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MortgageApplication{}, ErrMortgageAppNotFound
	}
	app, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MortgageApplication{}, err
	}
	if app.ID == "" {
		return entities.MortgageApplication{}, ErrMortgageAppNotFound
	}
	return app, nil
}

func (u *MortgageUseCase) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.MortgageApplication, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return nil, ErrInvalidMortgageInput
	}
	return u.repo.ListByBuyerID(ctx, buyerID)
}

// ltv is loan/value as a percentage with 2 decimal places; a zero property
// value yields "0".
func ltv(loan, value decimal.Decimal) string {
	if value.IsZero() {
		return "0"
	}
	return loan.Div(value).Mul(decimal.NewFromInt(100)).Round(2).String()
}
