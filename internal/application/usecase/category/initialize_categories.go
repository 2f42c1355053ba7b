// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// InitializeCategoriesOutput represents the output of default seeding.
type InitializeCategoriesOutput struct {
	Seeded bool // false when defaults were already present
}

// InitializeCategoriesUseCase seeds the default category set once. Repeated
// calls are a no-op.
type InitializeCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewInitializeCategoriesUseCase creates a new InitializeCategoriesUseCase instance.
func NewInitializeCategoriesUseCase(categoryRepo adapter.CategoryRepository) *InitializeCategoriesUseCase {
	return &InitializeCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the default categories when none exist yet.
func (uc *InitializeCategoriesUseCase) Execute(ctx context.Context) (*InitializeCategoriesOutput, error) {
	count, err := uc.categoryRepo.CountDefaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count default categories: %w", err)
	}
	if count > 0 {
		return &InitializeCategoriesOutput{Seeded: false}, nil
	}

	if err := uc.categoryRepo.CreateBatch(ctx, entity.DefaultCategories()); err != nil {
		return nil, fmt.Errorf("failed to seed default categories: %w", err)
	}

	return &InitializeCategoriesOutput{Seeded: true}, nil
}
