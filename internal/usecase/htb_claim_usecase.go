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
	"github.com/sirupsen/logrus"
)

var (
	ErrClaimNotFound             = errors.New("htb claim not found")
	ErrInvalidClaimBuyerID       = errors.New("invalid buyer_id")
	ErrInvalidClaimPropertyID    = errors.New("invalid property_id")
	ErrInvalidRequestedAmount    = errors.New("invalid requested amount")
	ErrInvalidClaimStatus        = errors.New("invalid claim status")
	ErrInvalidClaimTransition    = errors.New("invalid claim status transition")
	ErrInvalidActorID            = errors.New("invalid actor id")
	ErrReasonNoteRequired        = errors.New("reason note required")
	ErrConcurrentModification    = errors.New("concurrent modification")
	ErrDrawdownNotAllowed        = errors.New("drawdown not allowed in current status")
	ErrDrawdownAlreadyInFlight   = errors.New("drawdown already in flight")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

// IHTBClaimUseCase exposes Help-to-Buy claim operations.
//
// Status changes go through UpdateStatus exclusively: every transition is
// validated against the claim state machine and appends one history entry.

type IHTBClaimUseCase interface {
	CreateClaim(ctx context.Context, buyerID, propertyID string, requestedAmount entities.MonetaryAmount) (entities.HTBClaim, error)
	GetByID(ctx context.Context, id string) (entities.HTBClaim, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]entities.HTBClaim, error)
	UpdateStatus(ctx context.Context, claimID string, newStatus entities.HTBClaimStatus, actorID, note string, changes entities.HTBTransitionChanges) (entities.HTBClaim, error)
	AddDocument(ctx context.Context, claimID, url, name, docType, uploadedBy string) (entities.HTBClaim, error)
	AddNote(ctx context.Context, claimID, content string, private bool, authorID string) (entities.HTBClaim, error)
	SubmitFundsDrawdown(ctx context.Context, claimID, actorID string) (entities.HTBClaim, error)
}

type HTBClaimUseCase struct {
	repo    interfaces.IHTBClaimRepository
	gateway interfaces.IPaymentGateway
}

var _ IHTBClaimUseCase = (*HTBClaimUseCase)(nil)

func NewHTBClaimUseCase(repo interfaces.IHTBClaimRepository, gateway interfaces.IPaymentGateway) *HTBClaimUseCase {
	return &HTBClaimUseCase{repo: repo, gateway: gateway}
}

func (u *HTBClaimUseCase) CreateClaim(ctx context.Context, buyerID, propertyID string, requestedAmount entities.MonetaryAmount) (entities.HTBClaim, error) {
	buyerID = strings.TrimSpace(buyerID)
	propertyID = strings.TrimSpace(propertyID)
	if buyerID == "" {
		return entities.HTBClaim{}, ErrInvalidClaimBuyerID
	}
	if propertyID == "" {
		return entities.HTBClaim{}, ErrInvalidClaimPropertyID
	}
	if requestedAmount.Currency == "" || !requestedAmount.Amount.IsPositive() {
		return entities.HTBClaim{}, ErrInvalidRequestedAmount
	}

	now := time.Now().UTC()
	claim := entities.HTBClaim{
		ID:                 uuid.NewString(),
		BuyerID:            buyerID,
		PropertyID:         propertyID,
		RequestedAmount:    requestedAmount,
		Status:             entities.HTBStatusInitiated,
		FundsPaymentStatus: entities.HTBFundsPaymentPending,
		ApplicationDate:    now,
		LastUpdatedDate:    now,
		StatusHistory: []entities.HTBStatusUpdate{{
			ID:        uuid.NewString(),
			NewStatus: entities.HTBStatusInitiated,
			UpdatedBy: buyerID,
			UpdatedAt: now,
			Notes:     "claim initiated",
		}},
		Documents: []entities.HTBDocument{},
		Notes:     []entities.HTBNote{},
	}

	created, err := u.repo.Create(ctx, claim)
	if err != nil {
		return entities.HTBClaim{}, err
	}
	logrus.Infof("[htb][usecase] claim created claim_id=%s buyer_id=%s property_id=%s", created.ID, buyerID, propertyID)
	return created, nil
}

func (u *HTBClaimUseCase) GetByID(ctx context.Context, id string) (entities.HTBClaim, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.HTBClaim{}, ErrClaimNotFound
	}
	claim, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.HTBClaim{}, err
	}
	if claim.ID == "" {
		return entities.HTBClaim{}, ErrClaimNotFound
	}
	return claim, nil
}

func (u *HTBClaimUseCase) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.HTBClaim, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return nil, ErrInvalidClaimBuyerID
	}
	return u.repo.ListByBuyerID(ctx, buyerID)
}

// UpdateStatus applies one state-machine transition. The write is
// compare-and-swap on the status read here; a lost race is retried once
// before surfacing ErrConcurrentModification.
func (u *HTBClaimUseCase) UpdateStatus(ctx context.Context, claimID string, newStatus entities.HTBClaimStatus, actorID, note string, changes entities.HTBTransitionChanges) (entities.HTBClaim, error) {
	claimID = strings.TrimSpace(claimID)
	actorID = strings.TrimSpace(actorID)
	if claimID == "" {
		return entities.HTBClaim{}, ErrClaimNotFound
	}
	if actorID == "" {
		return entities.HTBClaim{}, ErrInvalidActorID
	}
	if !newStatus.IsValid() {
		return entities.HTBClaim{}, ErrInvalidClaimStatus
	}
	if isHTBAbortStatus(newStatus) && strings.TrimSpace(note) == "" {
		return entities.HTBClaim{}, ErrReasonNoteRequired
	}

	for attempt := 0; attempt < 2; attempt++ {
		claim, err := u.repo.GetByID(ctx, claimID)
		if err != nil {
			return entities.HTBClaim{}, err
		}
		if claim.ID == "" {
			return entities.HTBClaim{}, ErrClaimNotFound
		}
		if !claim.Status.CanTransitionTo(newStatus) {
			logrus.Warnf("[htb][usecase] invalid transition claim_id=%s from=%s to=%s actor_id=%s", claimID, claim.Status, newStatus, actorID)
			return entities.HTBClaim{}, fmt.Errorf("%w: %s -> %s", ErrInvalidClaimTransition, claim.Status, newStatus)
		}

		update := entities.HTBStatusUpdate{
			ID:             uuid.NewString(),
			PreviousStatus: claim.Status,
			NewStatus:      newStatus,
			UpdatedBy:      actorID,
			UpdatedAt:      time.Now().UTC(),
			Notes:          note,
		}
		updated, err := u.repo.ApplyTransition(ctx, claimID, claim.Status, update, changes)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			logrus.Warnf("[htb][usecase] transition lost race claim_id=%s attempt=%d", claimID, attempt+1)
			continue
		}
		if err != nil {
			return entities.HTBClaim{}, err
		}
		logrus.Infof("[htb][usecase] transition applied claim_id=%s from=%s to=%s actor_id=%s", claimID, update.PreviousStatus, newStatus, actorID)
		return updated, nil
	}
	return entities.HTBClaim{}, ErrConcurrentModification
}

func (u *HTBClaimUseCase) AddDocument(ctx context.Context, claimID, url, name, docType, uploadedBy string) (entities.HTBClaim, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.HTBClaim{}, ErrClaimNotFound
	}
	if strings.TrimSpace(url) == "" || strings.TrimSpace(name) == "" {
		return entities.HTBClaim{}, errors.New("document url and name are required")
	}

	doc := entities.HTBDocument{
		ID:         uuid.NewString(),
		URL:        strings.TrimSpace(url),
		Name:       strings.TrimSpace(name),
		Type:       strings.TrimSpace(docType),
		UploadedBy: strings.TrimSpace(uploadedBy),
		UploadedAt: time.Now().UTC(),
	}
	updated, err := u.repo.AddDocument(ctx, claimID, doc)
	if err != nil {
		return entities.HTBClaim{}, err
	}
	if updated.ID == "" {
		return entities.HTBClaim{}, ErrClaimNotFound
	}
	return updated, nil
}

func (u *HTBClaimUseCase) AddNote(ctx context.Context, claimID, content string, private bool, authorID string) (entities.HTBClaim, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.HTBClaim{}, ErrClaimNotFound
	}
	if strings.TrimSpace(content) == "" {
		return entities.HTBClaim{}, errors.New("note content is required")
	}

	note := entities.HTBNote{
		ID:        uuid.NewString(),
		Content:   strings.TrimSpace(content),
		Private:   private,
		AuthorID:  strings.TrimSpace(authorID),
		CreatedAt: time.Now().UTC(),
	}
	updated, err := u.repo.AddNote(ctx, claimID, note)
	if err != nil {
		return entities.HTBClaim{}, err
	}
	if updated.ID == "" {
		return entities.HTBClaim{}, ErrClaimNotFound
	}
	return updated, nil
}

// SubmitFundsDrawdown submits the claim's drawdown to the payment provider.
// It is the explicit payment action gated on FUNDS_REQUESTED; the state
// machine itself never calls out. The funds payment status moves
// pending -> processing before the provider call so concurrent submissions
// collapse into one.
func (u *HTBClaimUseCase) SubmitFundsDrawdown(ctx context.Context, claimID, actorID string) (entities.HTBClaim, error) {
	claimID = strings.TrimSpace(claimID)
	actorID = strings.TrimSpace(actorID)
	if claimID == "" {
		return entities.HTBClaim{}, ErrClaimNotFound
	}
	if actorID == "" {
		return entities.HTBClaim{}, ErrInvalidActorID
	}
	if u.gateway == nil {
		return entities.HTBClaim{}, ErrPaymentGatewayUnavailable
	}

	claim, err := u.repo.GetByID(ctx, claimID)
	if err != nil {
		return entities.HTBClaim{}, err
	}
	if claim.ID == "" {
		return entities.HTBClaim{}, ErrClaimNotFound
	}
	if claim.Status != entities.HTBStatusFundsRequested {
		return entities.HTBClaim{}, ErrDrawdownNotAllowed
	}

	marked, err := u.repo.UpdateFundsPaymentStatus(ctx, claimID, entities.HTBFundsPaymentPending, entities.HTBFundsPaymentProcessing)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.HTBClaim{}, ErrDrawdownAlreadyInFlight
	}
	if err != nil {
		return entities.HTBClaim{}, err
	}

	amount := claim.RequestedAmount
	if claim.ApprovedAmount != nil {
		amount = *claim.ApprovedAmount
	}
	logrus.Infof("[htb][usecase] drawdown submit claim_id=%s buyer_id=%s amount=%s", claimID, claim.BuyerID, amount)

	providerID, providerStatus, _, err := u.gateway.SubmitDrawdown(ctx, interfaces.DrawdownRequest{
		ClaimID:     claim.ID,
		BuyerID:     claim.BuyerID,
		Amount:      amount,
		Description: fmt.Sprintf("HTB drawdown claim %s", claim.ID),
	})
	if err != nil {
		logrus.Errorf("[htb][usecase] drawdown submit failed claim_id=%s err=%v", claimID, err)
		// Best effort: free the in-flight marker so the drawdown can be retried.
		if _, revertErr := u.repo.UpdateFundsPaymentStatus(ctx, claimID, entities.HTBFundsPaymentProcessing, entities.HTBFundsPaymentPending); revertErr != nil {
			logrus.Errorf("[htb][usecase] drawdown revert failed claim_id=%s err=%v", claimID, revertErr)
		}
		return entities.HTBClaim{}, err
	}
	logrus.Infof("[htb][usecase] drawdown submitted claim_id=%s provider_payment_id=%s provider_status=%s", claimID, providerID, providerStatus)
	return marked, nil
}

func isHTBAbortStatus(s entities.HTBClaimStatus) bool {
	switch s {
	case entities.HTBStatusRejected, entities.HTBStatusExpired, entities.HTBStatusCancelled:
		return true
	}
	return false
}
