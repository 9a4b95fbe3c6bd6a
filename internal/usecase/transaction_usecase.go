package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidTxBuyerID    = errors.New("invalid buyer_id")
	ErrInvalidTxUnitID     = errors.New("invalid unit_id")
	ErrInvalidAgreedPrice  = errors.New("invalid agreed price")
	ErrInvalidTxStatus     = errors.New("invalid transaction status")
	ErrInvalidTxTransition = errors.New("invalid transaction status transition")
	ErrInvalidFinancials   = errors.New("invalid financial amounts")
)

// FinancialChanges are the money fields a status update may carry.

type FinancialChanges struct {
	DepositPaid      *entities.MonetaryAmount
	TotalPaid        *entities.MonetaryAmount
	MortgageApproved *bool
}

// ITransactionUseCase exposes purchase transaction operations.
//
// The legacy platform accepted arbitrary status writes here; this
// implementation validates every update against the forward funnel, so a
// transaction can only move one step at a time (or cancel).

type ITransactionUseCase interface {
	CreateTransaction(ctx context.Context, buyerID, unitID string, agreedPrice entities.MonetaryAmount, mortgageRequired bool) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Transaction, error)
	UpdateStatus(ctx context.Context, id string, newStatus entities.TransactionStatus, changes FinancialChanges) (entities.Transaction, error)
}

type TransactionUseCase struct {
	repo interfaces.ITransactionRepository
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ITransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

func (u *TransactionUseCase) CreateTransaction(ctx context.Context, buyerID, unitID string, agreedPrice entities.MonetaryAmount, mortgageRequired bool) (entities.Transaction, error) {
	buyerID = strings.TrimSpace(buyerID)
	unitID = strings.TrimSpace(unitID)
	if buyerID == "" {
		return entities.Transaction{}, ErrInvalidTxBuyerID
	}
	if unitID == "" {
		return entities.Transaction{}, ErrInvalidTxUnitID
	}
	if agreedPrice.Currency == "" || !agreedPrice.Amount.IsPositive() {
		return entities.Transaction{}, ErrInvalidAgreedPrice
	}

	now := time.Now().UTC()
	zero := entities.MonetaryAmount{Amount: decimal.Zero, Currency: agreedPrice.Currency}
	tx := entities.Transaction{
		ID:               uuid.NewString(),
		ReferenceNumber:  newReferenceNumber(now),
		BuyerID:          buyerID,
		UnitID:           unitID,
		Status:           entities.TxStatusEnquiry,
		Stage:            entities.TxStatusEnquiry.Stage(),
		AgreedPrice:      agreedPrice,
		DepositPaid:      zero,
		TotalPaid:        zero,
		MortgageRequired: mortgageRequired,
		Events: []entities.TransactionEvent{{
			ID:   uuid.NewString(),
			Type: entities.TxEventCreated,
			Metadata: map[string]string{
				"newStatus": string(entities.TxStatusEnquiry),
			},
			At: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, tx)
	if err != nil {
		return entities.Transaction{}, err
	}
	logrus.Infof("[transaction][usecase] created tx_id=%s reference=%s buyer_id=%s unit_id=%s", created.ID, created.ReferenceNumber, buyerID, unitID)
	return created, nil
}

func (u *TransactionUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	tx, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if tx.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

func (u *TransactionUseCase) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Transaction, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return nil, ErrInvalidTxBuyerID
	}
	return u.repo.ListByBuyerID(ctx, buyerID)
}

// UpdateStatus moves the transaction one funnel step (or cancels it),
// applying any co-supplied financial fields and appending the audit event in
// the same conditional write. A lost race is retried once.
func (u *TransactionUseCase) UpdateStatus(ctx context.Context, id string, newStatus entities.TransactionStatus, changes FinancialChanges) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	if !newStatus.IsValid() {
		return entities.Transaction{}, ErrInvalidTxStatus
	}

	for attempt := 0; attempt < 2; attempt++ {
		tx, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Transaction{}, err
		}
		if tx.ID == "" {
			return entities.Transaction{}, ErrTransactionNotFound
		}
		if !tx.Status.CanTransitionTo(newStatus, tx.MortgageRequired) {
			return entities.Transaction{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTxTransition, tx.Status, newStatus)
		}
		if err := validateFinancials(tx, changes); err != nil {
			return entities.Transaction{}, err
		}

		event := entities.TransactionEvent{
			ID:   uuid.NewString(),
			Type: entities.TxEventStatusChanged,
			Metadata: map[string]string{
				"previousStatus": string(tx.Status),
				"newStatus":      string(newStatus),
			},
			At: time.Now().UTC(),
		}
		updated, err := u.repo.UpdateStatus(ctx, id, tx.Status, interfaces.TransactionStatusUpdate{
			Status:           newStatus,
			Stage:            newStatus.Stage(),
			DepositPaid:      changes.DepositPaid,
			TotalPaid:        changes.TotalPaid,
			MortgageApproved: changes.MortgageApproved,
		}, event)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			logrus.Warnf("[transaction][usecase] status update lost race tx_id=%s attempt=%d", id, attempt+1)
			continue
		}
		if err != nil {
			return entities.Transaction{}, err
		}
		logrus.Infof("[transaction][usecase] status updated tx_id=%s from=%s to=%s", id, tx.Status, newStatus)
		return updated, nil
	}
	return entities.Transaction{}, ErrConcurrentModification
}

// validateFinancials enforces deposit <= total <= agreed price over the
// amounts that would result from applying the changes.
func validateFinancials(tx entities.Transaction, changes FinancialChanges) error {
	deposit := tx.DepositPaid
	total := tx.TotalPaid
	if changes.DepositPaid != nil {
		deposit = *changes.DepositPaid
	}
	if changes.TotalPaid != nil {
		total = *changes.TotalPaid
	}
	if deposit.Amount.IsNegative() || total.Amount.IsNegative() {
		return ErrInvalidFinancials
	}
	ok, err := deposit.LessThanOrEqual(total)
	if err != nil || !ok {
		return ErrInvalidFinancials
	}
	ok, err = total.LessThanOrEqual(tx.AgreedPrice)
	if err != nil || !ok {
		return ErrInvalidFinancials
	}
	return nil
}

// newReferenceNumber builds a human-readable unique purchase reference,
// e.g. TXN-20250114-7F3A2B1C.
func newReferenceNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("TXN-%s-%s", now.Format("20060102"), suffix)
}
