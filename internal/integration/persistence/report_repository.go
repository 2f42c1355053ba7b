package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
// Queries group by plain columns only so they run unchanged on postgres
// and on the sqlite database used in tests.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// ListEntries retrieves every transaction entry for the user.
func (r *reportRepository) ListEntries(ctx context.Context, userID uuid.UUID) ([]adapter.TransactionEntry, error) {
	var rows []struct {
		Kind      string          `gorm:"column:kind"`
		Amount    decimal.Decimal `gorm:"column:amount"`
		Timestamp time.Time       `gorm:"column:timestamp"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("kind, amount, timestamp").
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction entries: %w", err)
	}

	entries := make([]adapter.TransactionEntry, len(rows))
	for i, row := range rows {
		entries[i] = adapter.TransactionEntry{
			Kind:      entity.TransactionKind(row.Kind),
			Amount:    row.Amount,
			Timestamp: row.Timestamp,
		}
	}
	return entries, nil
}

// SumByCategory groups the user's transactions by (category, kind) within the
// optional window and kind filter, ordered by total descending.
func (r *reportRepository) SumByCategory(ctx context.Context, userID uuid.UUID, start, end *time.Time, kind *entity.TransactionKind) ([]adapter.CategoryTotal, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category, kind, SUM(amount) as total, COUNT(*) as count").
		Where("user_id = ?", userID)

	if start != nil {
		query = query.Where("timestamp >= ?", start)
	}
	if end != nil {
		query = query.Where("timestamp <= ?", end)
	}
	if kind != nil {
		query = query.Where("kind = ?", string(*kind))
	}

	var rows []struct {
		Category string          `gorm:"column:category"`
		Kind     string          `gorm:"column:kind"`
		Total    decimal.Decimal `gorm:"column:total"`
		Count    int64           `gorm:"column:count"`
	}
	err := query.
		Group("category, kind").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum by category: %w", err)
	}

	totals := make([]adapter.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = adapter.CategoryTotal{
			Category: row.Category,
			Kind:     entity.TransactionKind(row.Kind),
			Total:    row.Total,
			Count:    row.Count,
		}
	}
	return totals, nil
}

// SumDebitsByCategory returns per-category debit totals within [start, end].
func (r *reportRepository) SumDebitsByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Category string          `gorm:"column:category"`
		Total    decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category, SUM(amount) as total").
		Where("user_id = ? AND kind = ?", userID, string(entity.TransactionKindDebit)).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum debits by category: %w", err)
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.Category] = row.Total
	}
	return totals, nil
}
