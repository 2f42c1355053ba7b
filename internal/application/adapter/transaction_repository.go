// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// TransactionFilter narrows a transaction listing. Zero values mean "no filter".
type TransactionFilter struct {
	UserID    uuid.UUID
	Kind      *entity.TransactionKind
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string // timestamp or amount, defaults to timestamp
	SortDesc  bool
}

// TransactionPagination holds 1-based pagination parameters.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction by ID scoped to its owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter with pagination.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// Update persists all fields of an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction scoped to its owner. Returns
	// ErrTransactionNotFound when nothing was deleted.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
