// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation. Month is
// meaningful only for monthly budgets.
type CreateBudgetInput struct {
	UserID   uuid.UUID
	Category string
	Amount   decimal.Decimal
	Period   entity.BudgetPeriod
	Year     int
	Month    *int
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	category, err := validateBudgetFields(input.Category, input.Amount, input.Period, input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	var budget *entity.Budget
	if input.Period == entity.BudgetPeriodMonthly {
		budget = entity.NewMonthlyBudget(input.UserID, category, input.Amount, input.Year, *input.Month)
	} else {
		budget = entity.NewYearlyBudget(input.UserID, category, input.Amount, input.Year)
	}

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		if errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetAlreadyExists,
				"budget already exists for this category and period",
				domainerror.ErrBudgetAlreadyExists,
			)
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}

// validateBudgetFields checks the required fields shared by create and update.
// It returns the trimmed category name.
func validateBudgetFields(category string, amount decimal.Decimal, period entity.BudgetPeriod, year int, month *int) (string, error) {
	var messages []string
	category = strings.TrimSpace(category)
	if category == "" {
		messages = append(messages, "category is required")
	}
	if period == "" {
		messages = append(messages, "period is required")
	}
	if year == 0 {
		messages = append(messages, "year is required")
	}
	if len(messages) > 0 {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			strings.Join(messages, ", "),
			domainerror.ErrMissingBudgetFields,
		)
	}
	if !entity.IsValidBudgetPeriod(period) {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be monthly or yearly",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	if !amount.IsPositive() {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be a positive number",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	if period == entity.BudgetPeriodMonthly {
		if month == nil {
			return "", domainerror.NewBudgetError(
				domainerror.ErrCodeMonthRequired,
				"month is required for monthly budgets",
				domainerror.ErrMonthRequired,
			)
		}
		if *month < 1 || *month > 12 {
			return "", domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetMonth,
				"month must be between 1 and 12",
				domainerror.ErrInvalidBudgetMonth,
			)
		}
	}
	return category, nil
}
