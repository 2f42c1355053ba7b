// Package report contains the aggregation and budget-comparison use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

var oneHundred = decimal.NewFromInt(100)

// BudgetComparisonInput represents the input for the budget comparison.
// Year and Month default to the current period when zero.
type BudgetComparisonInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// BudgetComparisonOutput represents the output of the budget comparison.
// Year and Month carry the resolved period. Comparisons keep query order; no
// budgets for the period yields an empty list.
type BudgetComparisonOutput struct {
	Year        int
	Month       int
	Comparisons []entity.BudgetComparison
}

// BudgetComparisonUseCase joins each budget applicable to the period against
// actual debit spend and classifies its status. Monthly budgets are measured
// over their calendar month; yearly budgets over the full calendar year.
type BudgetComparisonUseCase struct {
	budgetRepo adapter.BudgetRepository
	reportRepo adapter.ReportRepository
}

// NewBudgetComparisonUseCase creates a new BudgetComparisonUseCase instance.
func NewBudgetComparisonUseCase(budgetRepo adapter.BudgetRepository, reportRepo adapter.ReportRepository) *BudgetComparisonUseCase {
	return &BudgetComparisonUseCase{
		budgetRepo: budgetRepo,
		reportRepo: reportRepo,
	}
}

// Execute computes the budget comparison.
func (uc *BudgetComparisonUseCase) Execute(ctx context.Context, input BudgetComparisonInput) (*BudgetComparisonOutput, error) {
	now := time.Now().UTC()
	year := input.Year
	if year == 0 {
		year = now.Year()
	}
	month := input.Month
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidReportMonth,
		)
	}

	budgets, err := uc.budgetRepo.FindForPeriod(ctx, input.UserID, year, month)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportFetchFailed,
			"failed to fetch budget comparison",
			fmt.Errorf("find budgets: %w", err),
		)
	}
	if len(budgets) == 0 {
		return &BudgetComparisonOutput{Year: year, Month: month, Comparisons: []entity.BudgetComparison{}}, nil
	}

	monthStart, monthEnd := MonthWindow(year, month)
	yearStart, yearEnd := YearWindow(year)

	// Actual spend is fetched lazily per window so a period with only one
	// budget flavor issues a single query.
	var monthActuals, yearActuals map[string]decimal.Decimal

	comparisons := make([]entity.BudgetComparison, 0, len(budgets))
	for _, budget := range budgets {
		var actuals map[string]decimal.Decimal
		if budget.Period == entity.BudgetPeriodYearly {
			if yearActuals == nil {
				if yearActuals, err = uc.reportRepo.SumDebitsByCategory(ctx, input.UserID, yearStart, yearEnd); err != nil {
					return nil, domainerror.NewReportError(
						domainerror.ErrCodeReportFetchFailed,
						"failed to fetch budget comparison",
						fmt.Errorf("sum yearly debits: %w", err),
					)
				}
			}
			actuals = yearActuals
		} else {
			if monthActuals == nil {
				if monthActuals, err = uc.reportRepo.SumDebitsByCategory(ctx, input.UserID, monthStart, monthEnd); err != nil {
					return nil, domainerror.NewReportError(
						domainerror.ErrCodeReportFetchFailed,
						"failed to fetch budget comparison",
						fmt.Errorf("sum monthly debits: %w", err),
					)
				}
			}
			actuals = monthActuals
		}

		actual := actuals[budget.Category] // zero when no matching debits
		comparisons = append(comparisons, Compare(budget, actual))
	}

	return &BudgetComparisonOutput{Year: year, Month: month, Comparisons: comparisons}, nil
}

// Compare joins one budget against its actual spend.
func Compare(budget *entity.Budget, actual decimal.Decimal) entity.BudgetComparison {
	percentage := SpendPercentage(budget.Amount, actual)

	return entity.BudgetComparison{
		Category:   budget.Category,
		Budgeted:   budget.Amount,
		Actual:     actual,
		Remaining:  budget.Amount.Sub(actual),
		Percentage: percentage,
		Status:     ClassifyStatus(percentage),
	}
}

// SpendPercentage returns actual/budgeted*100 rounded half-up to two decimal
// places, or zero when budgeted is zero.
func SpendPercentage(budgeted, actual decimal.Decimal) decimal.Decimal {
	if budgeted.IsZero() {
		return decimal.Zero
	}
	return actual.Mul(oneHundred).Div(budgeted).Round(2)
}

// ClassifyStatus maps a spend percentage to a budget health status.
// Exactly 80 is still good; exactly 100 is still warning.
func ClassifyStatus(percentage decimal.Decimal) entity.BudgetStatus {
	switch {
	case percentage.GreaterThan(oneHundred):
		return entity.BudgetStatusOver
	case percentage.GreaterThan(decimal.NewFromInt(80)):
		return entity.BudgetStatusWarning
	default:
		return entity.BudgetStatusGood
	}
}

// MonthWindow returns the inclusive bounds of a calendar month in UTC.
func MonthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// YearWindow returns the inclusive bounds of a calendar year in UTC.
func YearWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	return start, end
}
