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

// KindTotal is the summed amount for one transaction kind within a period.
type KindTotal struct {
	Kind  entity.TransactionKind
	Total decimal.Decimal
}

// MonthlyPeriod is one (year, month) bucket of the monthly summary. A kind
// with no transactions in the period is absent from Summary, never a zero row.
type MonthlyPeriod struct {
	Year    int
	Month   int
	Summary []KindTotal
}

// MonthlySummaryInput represents the input for the monthly summary.
type MonthlySummaryInput struct {
	UserID uuid.UUID
}

// MonthlySummaryOutput represents the output of the monthly summary.
type MonthlySummaryOutput struct {
	Periods []MonthlyPeriod
}

// MonthlySummaryUseCase derives per-month income/expense totals from the raw
// transaction set. Returns all historical periods, newest first.
type MonthlySummaryUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewMonthlySummaryUseCase creates a new MonthlySummaryUseCase instance.
func NewMonthlySummaryUseCase(reportRepo adapter.ReportRepository) *MonthlySummaryUseCase {
	return &MonthlySummaryUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the monthly summary.
func (uc *MonthlySummaryUseCase) Execute(ctx context.Context, input MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	entries, err := uc.reportRepo.ListEntries(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportFetchFailed,
			"failed to fetch monthly summary",
			fmt.Errorf("list entries: %w", err),
		)
	}

	type monthKey struct {
		year  int
		month int
	}

	totals := make(map[monthKey]map[entity.TransactionKind]decimal.Decimal)
	for _, e := range entries {
		key := monthKey{year: e.Timestamp.Year(), month: int(e.Timestamp.Month())}
		if totals[key] == nil {
			totals[key] = make(map[entity.TransactionKind]decimal.Decimal)
		}
		totals[key][e.Kind] = totals[key][e.Kind].Add(e.Amount)
	}

	periods := make([]MonthlyPeriod, 0, len(totals))
	for key, byKind := range totals {
		periods = append(periods, MonthlyPeriod{
			Year:    key.year,
			Month:   key.month,
			Summary: kindTotals(byKind),
		})
	}

	// Newest period first.
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year > periods[j].Year
		}
		return periods[i].Month > periods[j].Month
	})

	return &MonthlySummaryOutput{Periods: periods}, nil
}

// kindTotals flattens a per-kind total map into a deterministic slice,
// credit before debit.
func kindTotals(byKind map[entity.TransactionKind]decimal.Decimal) []KindTotal {
	out := make([]KindTotal, 0, len(byKind))
	for _, kind := range []entity.TransactionKind{entity.TransactionKindCredit, entity.TransactionKindDebit} {
		if total, ok := byKind[kind]; ok {
			out = append(out, KindTotal{Kind: kind, Total: total})
		}
	}
	return out
}
