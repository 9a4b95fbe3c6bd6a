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
	ErrValuationNotFound     = errors.New("valuation not found")
	ErrValuationValidation   = errors.New("invalid valuation input")
	ErrValuationNumberTaken  = errors.New("valuation number already used for this project")
	ErrValuationNotSubmitted = errors.New("valuation is not in submitted status")
	ErrValuationNotApproved  = errors.New("valuation is not in approved status")
	ErrValuationImmutable    = errors.New("valuation is paid and immutable")
	ErrInvalidReviewDecision = errors.New("invalid review decision")
)

// ValuationSubmission is the contractor's payment-certificate request.

type ValuationSubmission struct {
	ProjectID           string
	ValuationNumber     int
	PeriodFrom          time.Time
	PeriodTo            time.Time
	ContractorID        string
	ContractorNotes     string
	Currency            string
	RetentionPercentage decimal.Decimal
	WorkCompleted       []entities.ValuationWorkItem
	MaterialsOnSite     []entities.MaterialOnSite
	Variations          []entities.ValuationVariation
	AssignedQSID        string
}

// IValuationUseCase exposes the contractor valuation ledger.

type IValuationUseCase interface {
	SubmitValuation(ctx context.Context, in ValuationSubmission) (entities.ContractorValuation, error)
	ReviewValuation(ctx context.Context, id, decision, reviewerID, comments string) (entities.ContractorValuation, error)
	MarkPaid(ctx context.Context, id string) (entities.ContractorValuation, error)
	GetByID(ctx context.Context, id string) (entities.ContractorValuation, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ContractorValuation, error)
}

type ValuationUseCase struct {
	repo          interfaces.IValuationRepository
	notifications interfaces.INotificationRepository
}

var _ IValuationUseCase = (*ValuationUseCase)(nil)

func NewValuationUseCase(repo interfaces.IValuationRepository, notifications interfaces.INotificationRepository) *ValuationUseCase {
	return &ValuationUseCase{repo: repo, notifications: notifications}
}

// SubmitValuation creates a certificate in submitted status. The certificate
// arithmetic is computed here, never taken from the caller:
//
//	gross = sum(work) + sum(materials) + sum(approved variations, signed)
//	retention = round(gross * retentionPercentage / 100)
//	net = (gross - previousCertificates) - retention
//
// The QS notification is best effort; its failure never fails the
// submission.
func (u *ValuationUseCase) SubmitValuation(ctx context.Context, in ValuationSubmission) (entities.ContractorValuation, error) {
	if err := validateSubmission(in); err != nil {
		return entities.ContractorValuation{}, err
	}

	prior, err := u.repo.ListByProjectID(ctx, in.ProjectID)
	if err != nil {
		return entities.ContractorValuation{}, err
	}
	previous := entities.MonetaryAmount{Amount: decimal.Zero, Currency: in.Currency}
	for _, v := range prior {
		if v.Status != entities.ValuationStatusApproved && v.Status != entities.ValuationStatusPaid {
			continue
		}
		if previous, err = previous.Add(v.NetAmount); err != nil {
			return entities.ContractorValuation{}, err
		}
	}

	gross, err := entities.ComputeGrossValuation(in.WorkCompleted, in.MaterialsOnSite, in.Variations, in.Currency)
	if err != nil {
		return entities.ContractorValuation{}, err
	}
	retention := entities.ComputeRetention(gross, in.RetentionPercentage)
	net, err := entities.ComputeNetAmount(gross, previous, retention)
	if err != nil {
		return entities.ContractorValuation{}, err
	}

	now := time.Now().UTC()
	valuation := entities.ContractorValuation{
		ID:                   uuid.NewString(),
		ProjectID:            in.ProjectID,
		ValuationNumber:      in.ValuationNumber,
		PeriodFrom:           in.PeriodFrom,
		PeriodTo:             in.PeriodTo,
		ContractorID:         in.ContractorID,
		ContractorNotes:      in.ContractorNotes,
		WorkCompleted:        in.WorkCompleted,
		MaterialsOnSite:      in.MaterialsOnSite,
		Variations:           in.Variations,
		GrossValuation:       gross,
		RetentionPercentage:  in.RetentionPercentage.String(),
		RetentionAmount:      retention,
		PreviousCertificates: previous,
		NetAmount:            net,
		Status:               entities.ValuationStatusSubmitted,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := u.repo.Create(ctx, valuation)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.ContractorValuation{}, ErrValuationNumberTaken
	}
	if err != nil {
		return entities.ContractorValuation{}, err
	}
	logrus.Infof("[valuation][usecase] submitted project_id=%s number=%d gross=%s retention=%s net=%s",
		created.ProjectID, created.ValuationNumber, created.GrossValuation, created.RetentionAmount, created.NetAmount)

	if in.AssignedQSID != "" && u.notifications != nil {
		_, nErr := u.notifications.Create(ctx, entities.Notification{
			ID:         uuid.NewString(),
			UserID:     in.AssignedQSID,
			Title:      fmt.Sprintf("Valuation %d submitted for review", created.ValuationNumber),
			Body:       fmt.Sprintf("Net amount %s awaits your review.", created.NetAmount),
			ActionLink: fmt.Sprintf("/valuations/%s", created.ID),
			CreatedAt:  now,
		})
		if nErr != nil {
			// Non-critical: the valuation is created either way.
			logrus.Errorf("[valuation][usecase] qs notification failed valuation_id=%s qs_id=%s err=%v", created.ID, in.AssignedQSID, nErr)
		}
	}
	return created, nil
}

func (u *ValuationUseCase) ReviewValuation(ctx context.Context, id, decision, reviewerID, comments string) (entities.ContractorValuation, error) {
	decision = strings.ToLower(strings.TrimSpace(decision))
	var next entities.ValuationStatus
	switch decision {
	case "approve":
		next = entities.ValuationStatusApproved
	case "reject":
		next = entities.ValuationStatusRejected
	default:
		return entities.ContractorValuation{}, ErrInvalidReviewDecision
	}
	reviewerID = strings.TrimSpace(reviewerID)
	if reviewerID == "" {
		return entities.ContractorValuation{}, ErrInvalidActorID
	}

	valuation, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ContractorValuation{}, err
	}
	if valuation.Status == entities.ValuationStatusPaid {
		return entities.ContractorValuation{}, ErrValuationImmutable
	}
	if valuation.Status != entities.ValuationStatusSubmitted {
		return entities.ContractorValuation{}, ErrValuationNotSubmitted
	}

	now := time.Now().UTC()
	updated, err := u.repo.UpdateStatus(ctx, valuation.ProjectID, valuation.ValuationNumber, entities.ValuationStatusSubmitted, interfaces.ValuationStatusUpdate{
		Status:       next,
		QSReviewedAt: &now,
		QSReviewedBy: reviewerID,
		QSComments:   strings.TrimSpace(comments),
	})
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.ContractorValuation{}, ErrConcurrentModification
	}
	if err != nil {
		return entities.ContractorValuation{}, err
	}
	logrus.Infof("[valuation][usecase] reviewed valuation_id=%s decision=%s reviewer_id=%s", valuation.ID, decision, reviewerID)
	return updated, nil
}

func (u *ValuationUseCase) MarkPaid(ctx context.Context, id string) (entities.ContractorValuation, error) {
	valuation, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ContractorValuation{}, err
	}
	if valuation.Status == entities.ValuationStatusPaid {
		return entities.ContractorValuation{}, ErrValuationImmutable
	}
	if valuation.Status != entities.ValuationStatusApproved {
		return entities.ContractorValuation{}, ErrValuationNotApproved
	}

	now := time.Now().UTC()
	updated, err := u.repo.UpdateStatus(ctx, valuation.ProjectID, valuation.ValuationNumber, entities.ValuationStatusApproved, interfaces.ValuationStatusUpdate{
		Status: entities.ValuationStatusPaid,
		PaidAt: &now,
	})
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return entities.ContractorValuation{}, ErrConcurrentModification
	}
	if err != nil {
		return entities.ContractorValuation{}, err
	}
	logrus.Infof("[valuation][usecase] paid valuation_id=%s net=%s", valuation.ID, valuation.NetAmount)
	return updated, nil
}

func (u *ValuationUseCase) GetByID(ctx context.Context, id string) (entities.ContractorValuation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContractorValuation{}, ErrValuationNotFound
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContractorValuation{}, err
	}
	if v.ID == "" {
		return entities.ContractorValuation{}, ErrValuationNotFound
	}
	return v, nil
}

func (u *ValuationUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.ContractorValuation, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", ErrValuationValidation)
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

func validateSubmission(in ValuationSubmission) error {
	if strings.TrimSpace(in.ProjectID) == "" {
		return fmt.Errorf("%w: project_id is required", ErrValuationValidation)
	}
	if in.ValuationNumber <= 0 {
		return fmt.Errorf("%w: valuation_number must be a positive integer", ErrValuationValidation)
	}
	if strings.TrimSpace(in.ContractorID) == "" {
		return fmt.Errorf("%w: contractor_id is required", ErrValuationValidation)
	}
	if len(in.WorkCompleted) == 0 {
		return fmt.Errorf("%w: work_completed is required", ErrValuationValidation)
	}
	if strings.TrimSpace(in.Currency) == "" {
		return fmt.Errorf("%w: currency is required", ErrValuationValidation)
	}
	if in.RetentionPercentage.IsNegative() {
		return fmt.Errorf("%w: retention_percentage must not be negative", ErrValuationValidation)
	}
	return nil
}
