// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// BudgetFilter narrows a budget listing. Nil values mean "no filter".
type BudgetFilter struct {
	UserID uuid.UUID
	Year   *int
	Month  *int
}

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget. A unique-index violation on
	// (user, category, period, year, month) surfaces as ErrBudgetAlreadyExists.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByIDAndUser retrieves a budget by ID scoped to its owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)

	// FindByFilter retrieves the user's budgets matching the filter, sorted by
	// category.
	FindByFilter(ctx context.Context, filter BudgetFilter) ([]*entity.Budget, error)

	// FindForPeriod retrieves budgets applicable to a comparison period:
	// yearly budgets for the year plus monthly budgets for (year, month).
	FindForPeriod(ctx context.Context, userID uuid.UUID, year, month int) ([]*entity.Budget, error)

	// Update persists all fields of an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget scoped to its owner. Returns ErrBudgetNotFound
	// when nothing was deleted.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
