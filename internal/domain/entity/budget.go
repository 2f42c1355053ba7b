// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the cadence of a budget cap.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget caps spending for one category over one period. One row is one
// category's cap for one (year, month) or one year. Category is a plain
// name, matched against Transaction.Category at comparison time.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Amount    decimal.Decimal
	Period    BudgetPeriod
	Year      int
	Month     *int // set iff Period is monthly, 1..12
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMonthlyBudget creates a budget capping one category for one calendar month.
func NewMonthlyBudget(userID uuid.UUID, category string, amount decimal.Decimal, year, month int) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Period:    BudgetPeriodMonthly,
		Year:      year,
		Month:     &month,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewYearlyBudget creates a budget capping one category for one calendar year.
func NewYearlyBudget(userID uuid.UUID, category string, amount decimal.Decimal, year int) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Period:    BudgetPeriodYearly,
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidBudgetPeriod reports whether period is one of the known periods.
func IsValidBudgetPeriod(period BudgetPeriod) bool {
	return period == BudgetPeriodMonthly || period == BudgetPeriodYearly
}

// BudgetStatus classifies how much of a budget has been consumed.
type BudgetStatus string

const (
	BudgetStatusGood    BudgetStatus = "good"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusOver    BudgetStatus = "over"
)

// BudgetComparison is one budget joined against actual spend for its period.
type BudgetComparison struct {
	Category   string
	Budgeted   decimal.Decimal
	Actual     decimal.Decimal
	Remaining  decimal.Decimal
	Percentage decimal.Decimal
	Status     BudgetStatus
}
