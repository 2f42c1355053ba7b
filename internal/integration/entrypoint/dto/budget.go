package dto

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
// Month is required when period is monthly and must be absent for yearly.
type CreateBudgetRequest struct {
	Category string  `json:"category" binding:"required,max=100"`
	Amount   float64 `json:"amount" binding:"required"`
	Period   string  `json:"period" binding:"required"`
	Year     int     `json:"year" binding:"required"`
	Month    *int    `json:"month,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category string  `json:"category" binding:"required,max=100"`
	Amount   float64 `json:"amount" binding:"required"`
	Period   string  `json:"period" binding:"required"`
	Year     int     `json:"year" binding:"required"`
	Month    *int    `json:"month,omitempty"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Period    string    `json:"period"`
	Year      int       `json:"year"`
	Month     *int      `json:"month,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetComparisonResponse represents one budget-vs-actual row.
type BudgetComparisonResponse struct {
	Category   string `json:"category"`
	Budgeted   string `json:"budgeted"`
	Actual     string `json:"actual"`
	Remaining  string `json:"remaining"`
	Percentage string `json:"percentage"`
	Status     string `json:"status"`
}

// BudgetComparisonListResponse represents the budget comparison report.
type BudgetComparisonListResponse struct {
	Year        int                        `json:"year"`
	Month       int                        `json:"month"`
	Comparisons []BudgetComparisonResponse `json:"comparisons"`
}

// BudgetResponseFromEntity converts a domain Budget to a BudgetResponse.
func BudgetResponseFromEntity(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		Category:  budget.Category,
		Amount:    budget.Amount.StringFixed(2),
		Period:    string(budget.Period),
		Year:      budget.Year,
		Month:     budget.Month,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}

// BudgetListResponseFromEntities converts domain budgets to a list response.
func BudgetListResponseFromEntities(budgets []*entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = BudgetResponseFromEntity(b)
	}
	return BudgetListResponse{Budgets: responses}
}

// BudgetComparisonResponseFromEntity converts a comparison row to its response.
func BudgetComparisonResponseFromEntity(comparison entity.BudgetComparison) BudgetComparisonResponse {
	return BudgetComparisonResponse{
		Category:   comparison.Category,
		Budgeted:   comparison.Budgeted.StringFixed(2),
		Actual:     comparison.Actual.StringFixed(2),
		Remaining:  comparison.Remaining.StringFixed(2),
		Percentage: comparison.Percentage.StringFixed(2),
		Status:     string(comparison.Status),
	}
}
