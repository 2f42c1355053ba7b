// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

// TransactionEntry is the minimal projection of a transaction used for
// time-bucketed summaries.
type TransactionEntry struct {
	Kind      entity.TransactionKind
	Amount    decimal.Decimal
	Timestamp time.Time
}

// CategoryTotal is one (category, kind) group with its summed amount and row count.
type CategoryTotal struct {
	Category string
	Kind     entity.TransactionKind
	Total    decimal.Decimal
	Count    int64
}

// ReportRepository defines the read-only queries backing the aggregation
// endpoints. Grouping by category is pushed into SQL; time bucketing is done
// by the use cases so the queries stay portable across database engines.
type ReportRepository interface {
	// ListEntries retrieves every transaction entry for the user.
	ListEntries(ctx context.Context, userID uuid.UUID) ([]TransactionEntry, error)

	// SumByCategory groups the user's transactions by (category, kind) within
	// the optional window and kind filter, ordered by total descending.
	SumByCategory(ctx context.Context, userID uuid.UUID, start, end *time.Time, kind *entity.TransactionKind) ([]CategoryTotal, error)

	// SumDebitsByCategory returns per-category debit totals within [start, end].
	// Categories with no debits are absent from the map.
	SumDebitsByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[string]decimal.Decimal, error)
}
