package usecase

import (
	"context"
	"errors"
	"strings"

	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrInvalidReportScope = errors.New("invalid report scope")

// DevelopmentSalesSummary is the sales rollup for one development.

type DevelopmentSalesSummary struct {
	DevelopmentID  string                      `json:"development_id"`
	TotalUnits     int                         `json:"total_units"`
	CountsByStatus map[entities.UnitStatus]int `json:"counts_by_status"`
	SoldRate       string                      `json:"sold_rate"`
	ReservedRate   string                      `json:"reserved_rate"`
}

// ProjectValuationSummary is the certificate rollup for one project.

type ProjectValuationSummary struct {
	ProjectID       string                           `json:"project_id"`
	TotalValuations int                              `json:"total_valuations"`
	CountsByStatus  map[entities.ValuationStatus]int `json:"counts_by_status"`
	ApprovalRate    string                           `json:"approval_rate"`
	CertifiedToDate *entities.MonetaryAmount         `json:"certified_to_date,omitempty"`
	RetentionHeld   *entities.MonetaryAmount         `json:"retention_held,omitempty"`
}

// TransactionFunnelSummary is the platform-wide purchase funnel.

type TransactionFunnelSummary struct {
	TotalTransactions int                                `json:"total_transactions"`
	CountsByStatus    map[entities.TransactionStatus]int `json:"counts_by_status"`
	CompletionRate    string                             `json:"completion_rate"`
	CancellationRate  string                             `json:"cancellation_rate"`
}

// IReportingUseCase exposes read-only dashboard rollups. No operation here
// mutates anything; rate calculations over empty sets return 0.

type IReportingUseCase interface {
	DevelopmentSales(ctx context.Context, developmentID string) (DevelopmentSalesSummary, error)
	ProjectValuations(ctx context.Context, projectID string) (ProjectValuationSummary, error)
	TransactionFunnel(ctx context.Context) (TransactionFunnelSummary, error)
}

type ReportingUseCase struct {
	units        interfaces.IUnitRepository
	valuations   interfaces.IValuationRepository
	transactions interfaces.ITransactionRepository
}

var _ IReportingUseCase = (*ReportingUseCase)(nil)

func NewReportingUseCase(units interfaces.IUnitRepository, valuations interfaces.IValuationRepository, transactions interfaces.ITransactionRepository) *ReportingUseCase {
	return &ReportingUseCase{units: units, valuations: valuations, transactions: transactions}
}

func (u *ReportingUseCase) DevelopmentSales(ctx context.Context, developmentID string) (DevelopmentSalesSummary, error) {
	developmentID = strings.TrimSpace(developmentID)
	if developmentID == "" {
		return DevelopmentSalesSummary{}, ErrInvalidReportScope
	}

	units, err := u.units.ListByDevelopmentID(ctx, developmentID)
	if err != nil {
		return DevelopmentSalesSummary{}, err
	}

	counts := map[entities.UnitStatus]int{}
	for _, unit := range units {
		counts[unit.Status]++
	}
	return DevelopmentSalesSummary{
		DevelopmentID:  developmentID,
		TotalUnits:     len(units),
		CountsByStatus: counts,
		SoldRate:       rate(counts[entities.UnitStatusSold], len(units)),
		ReservedRate:   rate(counts[entities.UnitStatusReserved], len(units)),
	}, nil
}

func (u *ReportingUseCase) ProjectValuations(ctx context.Context, projectID string) (ProjectValuationSummary, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return ProjectValuationSummary{}, ErrInvalidReportScope
	}

	valuations, err := u.valuations.ListByProjectID(ctx, projectID)
	if err != nil {
		return ProjectValuationSummary{}, err
	}

	counts := map[entities.ValuationStatus]int{}
	var certified, retention *entities.MonetaryAmount
	for _, v := range valuations {
		counts[v.Status]++
		if v.Status != entities.ValuationStatusApproved && v.Status != entities.ValuationStatusPaid {
			continue
		}
		if certified == nil {
			zero := entities.MonetaryAmount{Amount: decimal.Zero, Currency: v.NetAmount.Currency}
			c, r := zero, zero
			certified, retention = &c, &r
		}
		if sum, err := certified.Add(v.NetAmount); err == nil {
			certified = &sum
		}
		if sum, err := retention.Add(v.RetentionAmount); err == nil {
			retention = &sum
		}
	}

	approvedCount := counts[entities.ValuationStatusApproved] + counts[entities.ValuationStatusPaid]
	return ProjectValuationSummary{
		ProjectID:       projectID,
		TotalValuations: len(valuations),
		CountsByStatus:  counts,
		ApprovalRate:    rate(approvedCount, len(valuations)),
		CertifiedToDate: certified,
		RetentionHeld:   retention,
	}, nil
}

func (u *ReportingUseCase) TransactionFunnel(ctx context.Context) (TransactionFunnelSummary, error) {
	txs, err := u.transactions.ListAll(ctx)
	if err != nil {
		return TransactionFunnelSummary{}, err
	}

	counts := map[entities.TransactionStatus]int{}
	for _, tx := range txs {
		counts[tx.Status]++
	}
	return TransactionFunnelSummary{
		TotalTransactions: len(txs),
		CountsByStatus:    counts,
		CompletionRate:    rate(counts[entities.TxStatusCompleted], len(txs)),
		CancellationRate:  rate(counts[entities.TxStatusCancelled], len(txs)),
	}, nil
}

// rate returns n/total rounded to 4 decimal places; a zero denominator
// yields "0", not an error.
func rate(n, total int) string {
	if total == 0 {
		return "0"
	}
	return decimal.NewFromInt(int64(n)).Div(decimal.NewFromInt(int64(total))).Round(4).String()
}
