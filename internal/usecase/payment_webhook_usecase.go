package usecase

import (
	"context"
	"errors"
	"time"

	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPaymentEvent = errors.New("invalid payment event")
	ErrPaymentNotFound     = errors.New("payment not found")
)

// IPaymentWebhookUseCase consumes verified payment-provider events and
// applies the matching domain-state changes exactly once.

type IPaymentWebhookUseCase interface {
	HandlePaymentEvent(ctx context.Context, event entities.PaymentEvent) error
	GetByEventID(ctx context.Context, eventID string) (entities.Payment, error)
}

type PaymentWebhookUseCase struct {
	payments interfaces.IPaymentRepository
	units    interfaces.IUnitRepository
	claims   interfaces.IHTBClaimRepository
}

var _ IPaymentWebhookUseCase = (*PaymentWebhookUseCase)(nil)

func NewPaymentWebhookUseCase(payments interfaces.IPaymentRepository, units interfaces.IUnitRepository, claims interfaces.IHTBClaimRepository) *PaymentWebhookUseCase {
	return &PaymentWebhookUseCase{payments: payments, units: units, claims: claims}
}

// HandlePaymentEvent records the event and applies its effects.
//
// Idempotency: the Payment record is keyed by the provider event id and
// written with a conditional put. A replayed delivery finds the record
// already present and returns success without reapplying anything.
//
// Failure semantics: only a failure to write the Payment record itself is
// returned (nothing was applied, so a provider retry is safe). Every
// downstream failure after that is logged as manual-reconciliation work and
// swallowed; providers retry on non-2xx and a retry would be a duplicate.
func (u *PaymentWebhookUseCase) HandlePaymentEvent(ctx context.Context, event entities.PaymentEvent) error {
	if event.EventID == "" {
		return ErrInvalidPaymentEvent
	}
	if event.Type != entities.PaymentEventSucceeded && event.Type != entities.PaymentEventFailed {
		return ErrInvalidPaymentEvent
	}
	logrus.Infof("[payment][usecase] event received event_id=%s type=%s payment_type=%s", event.EventID, event.Type, event.Metadata.PaymentType)

	status := entities.PaymentStatusCompleted
	if event.Type == entities.PaymentEventFailed {
		status = entities.PaymentStatusFailed
	}
	record := entities.Payment{
		EventID:       event.EventID,
		TransactionID: event.Metadata.TransactionID,
		BuyerID:       event.Metadata.BuyerID,
		UnitID:        event.Metadata.PropertyID,
		PaymentType:   event.Metadata.PaymentType,
		Amount:        event.Amount,
		Status:        status,
		FailureReason: event.FailureReason,
		ReceivedAt:    time.Now().UTC(),
	}

	_, created, err := u.payments.Create(ctx, record)
	if err != nil {
		logrus.Errorf("[payment][usecase] payment record write failed event_id=%s err=%v", event.EventID, err)
		return err
	}
	if !created {
		logrus.Infof("[payment][usecase] event already processed event_id=%s", event.EventID)
		return nil
	}

	if status == entities.PaymentStatusCompleted {
		u.applySucceeded(ctx, event)
	} else {
		u.applyFailed(ctx, event)
	}
	return nil
}

func (u *PaymentWebhookUseCase) GetByEventID(ctx context.Context, eventID string) (entities.Payment, error) {
	if eventID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	p, err := u.payments.GetByEventID(ctx, eventID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.EventID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// applySucceeded moves the unit along the sales funnel for the payment type
// and links the payment to an active HTB claim. Each sub-step logs and
// continues on failure.
func (u *PaymentWebhookUseCase) applySucceeded(ctx context.Context, event entities.PaymentEvent) {
	unitID := event.Metadata.PropertyID
	buyerID := event.Metadata.BuyerID

	var expected, next entities.UnitStatus
	switch event.Metadata.PaymentType {
	case entities.PaymentTypeBookingDeposit:
		expected, next = entities.UnitStatusAvailable, entities.UnitStatusReserved
	case entities.PaymentTypeContractualDeposit:
		expected, next = entities.UnitStatusReserved, entities.UnitStatusUnderContract
	case entities.PaymentTypeCompletionPayment:
		expected, next = entities.UnitStatusUnderContract, entities.UnitStatusSold
	}

	if next != "" && unitID != "" {
		_, err := u.units.UpdateStatus(ctx, unitID, expected, next, buyerID)
		switch {
		case errors.Is(err, interfaces.ErrConditionFailed):
			logrus.Errorf("[payment][usecase] manual reconciliation required: unit not in expected status event_id=%s unit_id=%s expected=%s next=%s", event.EventID, unitID, expected, next)
		case err != nil:
			logrus.Errorf("[payment][usecase] manual reconciliation required: unit update failed event_id=%s unit_id=%s err=%v", event.EventID, unitID, err)
		default:
			logrus.Infof("[payment][usecase] unit status updated event_id=%s unit_id=%s status=%s", event.EventID, unitID, next)
		}
	}

	// HTB linking is non-critical: log and continue, never roll back the
	// payment record.
	if buyerID == "" {
		return
	}
	claim, err := u.activeClaimInStatus(ctx, buyerID, entities.HTBStatusFundsRequested)
	if err != nil {
		logrus.Errorf("[payment][usecase] htb lookup failed event_id=%s buyer_id=%s err=%v", event.EventID, buyerID, err)
		return
	}
	if claim.ID == "" {
		return
	}
	if _, err := u.claims.UpdateFundsPaymentStatus(ctx, claim.ID, entities.HTBFundsPaymentProcessing, entities.HTBFundsPaymentReceived); err != nil && !errors.Is(err, interfaces.ErrConditionFailed) {
		logrus.Errorf("[payment][usecase] htb funds status update failed event_id=%s claim_id=%s err=%v", event.EventID, claim.ID, err)
	}
	update := entities.HTBStatusUpdate{
		ID:             uuid.NewString(),
		PreviousStatus: entities.HTBStatusFundsRequested,
		NewStatus:      entities.HTBStatusFundsReceived,
		UpdatedBy:      "payment-provider",
		UpdatedAt:      time.Now().UTC(),
		Notes:          "funds received via payment provider event " + event.EventID,
	}
	if _, err := u.claims.ApplyTransition(ctx, claim.ID, entities.HTBStatusFundsRequested, update, entities.HTBTransitionChanges{}); err != nil {
		logrus.Errorf("[payment][usecase] manual reconciliation required: htb transition failed event_id=%s claim_id=%s err=%v", event.EventID, claim.ID, err)
		return
	}
	logrus.Infof("[payment][usecase] htb claim advanced event_id=%s claim_id=%s to=%s", event.EventID, claim.ID, entities.HTBStatusFundsReceived)
}

// applyFailed releases a booking reservation held by the same buyer and
// frees any in-flight HTB drawdown marker.
func (u *PaymentWebhookUseCase) applyFailed(ctx context.Context, event entities.PaymentEvent) {
	unitID := event.Metadata.PropertyID
	buyerID := event.Metadata.BuyerID

	if event.Metadata.PaymentType == entities.PaymentTypeBookingDeposit && unitID != "" && buyerID != "" {
		_, err := u.units.Release(ctx, unitID, buyerID)
		switch {
		case errors.Is(err, interfaces.ErrConditionFailed):
			// Reserved by a different buyer (or not reserved at all): the
			// guarded reversal must not touch it.
			logrus.Infof("[payment][usecase] reservation not released (ownership guard) event_id=%s unit_id=%s buyer_id=%s", event.EventID, unitID, buyerID)
		case err != nil:
			logrus.Errorf("[payment][usecase] manual reconciliation required: reservation release failed event_id=%s unit_id=%s err=%v", event.EventID, unitID, err)
		default:
			logrus.Infof("[payment][usecase] reservation released event_id=%s unit_id=%s", event.EventID, unitID)
		}
	}

	if buyerID == "" {
		return
	}
	claim, err := u.activeClaimInStatus(ctx, buyerID, entities.HTBStatusFundsRequested)
	if err != nil {
		logrus.Errorf("[payment][usecase] htb lookup failed event_id=%s buyer_id=%s err=%v", event.EventID, buyerID, err)
		return
	}
	if claim.ID == "" {
		return
	}
	if _, err := u.claims.UpdateFundsPaymentStatus(ctx, claim.ID, entities.HTBFundsPaymentProcessing, entities.HTBFundsPaymentPending); err != nil && !errors.Is(err, interfaces.ErrConditionFailed) {
		logrus.Errorf("[payment][usecase] manual reconciliation required: htb revert failed event_id=%s claim_id=%s err=%v", event.EventID, claim.ID, err)
		return
	}
	logrus.Infof("[payment][usecase] htb drawdown reverted to pending event_id=%s claim_id=%s", event.EventID, claim.ID)
}

func (u *PaymentWebhookUseCase) activeClaimInStatus(ctx context.Context, buyerID string, status entities.HTBClaimStatus) (entities.HTBClaim, error) {
	claims, err := u.claims.ListByBuyerID(ctx, buyerID)
	if err != nil {
		return entities.HTBClaim{}, err
	}
	for _, c := range claims {
		if c.Status == status {
			return c, nil
		}
	}
	return entities.HTBClaim{}, nil
}
