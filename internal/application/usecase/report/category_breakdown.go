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

// CategoryBreakdownInput represents the input for the category breakdown.
// StartDate, EndDate and Kind are all optional.
type CategoryBreakdownInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Kind      *entity.TransactionKind
}

// CategoryBreakdownItem is one (category, kind) group, largest total first.
type CategoryBreakdownItem struct {
	Category string
	Kind     entity.TransactionKind
	Total    decimal.Decimal
	Count    int64
}

// CategoryBreakdownOutput represents the output of the category breakdown.
type CategoryBreakdownOutput struct {
	Items []CategoryBreakdownItem
}

// CategoryBreakdownUseCase groups transactions by (category, kind) and sums
// them, for expense-distribution views.
type CategoryBreakdownUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewCategoryBreakdownUseCase creates a new CategoryBreakdownUseCase instance.
func NewCategoryBreakdownUseCase(reportRepo adapter.ReportRepository) *CategoryBreakdownUseCase {
	return &CategoryBreakdownUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the category breakdown.
func (uc *CategoryBreakdownUseCase) Execute(ctx context.Context, input CategoryBreakdownInput) (*CategoryBreakdownOutput, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportRange,
			"end date must not precede start date",
			domainerror.ErrInvalidReportRange,
		)
	}

	totals, err := uc.reportRepo.SumByCategory(ctx, input.UserID, input.StartDate, input.EndDate, input.Kind)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportFetchFailed,
			"failed to fetch category breakdown",
			fmt.Errorf("sum by category: %w", err),
		)
	}

	items := make([]CategoryBreakdownItem, len(totals))
	for i, t := range totals {
		items[i] = CategoryBreakdownItem{
			Category: t.Category,
			Kind:     t.Kind,
			Total:    t.Total,
			Count:    t.Count,
		}
	}

	return &CategoryBreakdownOutput{Items: items}, nil
}
