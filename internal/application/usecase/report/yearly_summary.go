// Package report contains the aggregation and budget-comparison use cases.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// YearlyPeriod is one year bucket of the yearly summary.
type YearlyPeriod struct {
	Year    int
	Summary []KindTotal
}

// YearlySummaryInput represents the input for the yearly summary.
type YearlySummaryInput struct {
	UserID uuid.UUID
}

// YearlySummaryOutput represents the output of the yearly summary.
type YearlySummaryOutput struct {
	Periods []YearlyPeriod
}

// YearlySummaryUseCase derives per-year income/expense totals, newest first.
type YearlySummaryUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewYearlySummaryUseCase creates a new YearlySummaryUseCase instance.
func NewYearlySummaryUseCase(reportRepo adapter.ReportRepository) *YearlySummaryUseCase {
	return &YearlySummaryUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the yearly summary.
func (uc *YearlySummaryUseCase) Execute(ctx context.Context, input YearlySummaryInput) (*YearlySummaryOutput, error) {
	entries, err := uc.reportRepo.ListEntries(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportFetchFailed,
			"failed to fetch yearly summary",
			fmt.Errorf("list entries: %w", err),
		)
	}

	totals := make(map[int]map[entity.TransactionKind]decimal.Decimal)
	for _, e := range entries {
		year := e.Timestamp.Year()
		if totals[year] == nil {
			totals[year] = make(map[entity.TransactionKind]decimal.Decimal)
		}
		totals[year][e.Kind] = totals[year][e.Kind].Add(e.Amount)
	}

	periods := make([]YearlyPeriod, 0, len(totals))
	for year, byKind := range totals {
		periods = append(periods, YearlyPeriod{
			Year:    year,
			Summary: kindTotals(byKind),
		})
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Year > periods[j].Year
	})

	return &YearlySummaryOutput{Periods: periods}, nil
}
