package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// The composite unique index enforces one budget per user, category,
// period and time window. Month is null for yearly budgets.
type BudgetModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_scope"`
	Category  string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budgets_scope"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Period    string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_budgets_scope"`
	Year      int             `gorm:"not null;uniqueIndex:idx_budgets_scope"`
	Month     *int            `gorm:"uniqueIndex:idx_budgets_scope"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:        m.ID,
		UserID:    m.UserID,
		Category:  m.Category,
		Amount:    m.Amount,
		Period:    entity.BudgetPeriod(m.Period),
		Year:      m.Year,
		Month:     m.Month,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:        budget.ID,
		UserID:    budget.UserID,
		Category:  budget.Category,
		Amount:    budget.Amount,
		Period:    string(budget.Period),
		Year:      budget.Year,
		Month:     budget.Month,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
