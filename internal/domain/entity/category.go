// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryKind represents the kind of transactions a category applies to.
type CategoryKind string

const (
	CategoryKindExpense CategoryKind = "expense"
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindBoth    CategoryKind = "both"
)

// DefaultCategoryColor is the color applied when none is given.
const DefaultCategoryColor = "#6366f1"

// DefaultCategoryIcon is the icon applied when none is given.
const DefaultCategoryIcon = "tag"

// Category represents a transaction category. Default categories are seeded by
// the system, have no owner, and are visible to every user but immutable.
// User-created categories belong to exactly one owner.
type Category struct {
	ID        uuid.UUID
	OwnerID   *uuid.UUID // nil for default categories
	Name      string
	Kind      CategoryKind
	Color     string
	Icon      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a user-owned Category entity. Defaulting of color and
// icon is applied in the use case before calling this constructor.
func NewCategory(ownerID uuid.UUID, name string, kind CategoryKind, color, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		OwnerID:   &ownerID,
		Name:      name,
		Kind:      kind,
		Color:     color,
		Icon:      icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewDefaultCategory creates an ownerless default Category entity.
func NewDefaultCategory(name string, kind CategoryKind, color, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		Color:     color,
		Icon:      icon,
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy reports whether the category belongs to the given user.
func (c *Category) IsOwnedBy(userID uuid.UUID) bool {
	return c.OwnerID != nil && *c.OwnerID == userID
}

// IsValidCategoryKind reports whether kind is one of the known kinds.
func IsValidCategoryKind(kind CategoryKind) bool {
	return kind == CategoryKindExpense || kind == CategoryKindIncome || kind == CategoryKindBoth
}

// DefaultCategories is the set seeded by the initialize operation.
func DefaultCategories() []*Category {
	return []*Category{
		NewDefaultCategory("Food", CategoryKindExpense, "#ef4444", "utensils"),
		NewDefaultCategory("Travel", CategoryKindExpense, "#3b82f6", "plane"),
		NewDefaultCategory("Billing", CategoryKindExpense, "#f59e0b", "receipt"),
		NewDefaultCategory("Shopping", CategoryKindExpense, "#8b5cf6", "shopping-bag"),
		NewDefaultCategory("Entertainment", CategoryKindExpense, "#ec4899", "music"),
		NewDefaultCategory("Salary", CategoryKindIncome, "#10b981", "dollar-sign"),
		NewDefaultCategory("Freelance", CategoryKindIncome, "#06b6d4", "briefcase"),
		NewDefaultCategory("Others", CategoryKindBoth, "#6b7280", "more-horizontal"),
	}
}
