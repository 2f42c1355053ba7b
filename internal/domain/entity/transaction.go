// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the direction of a transaction.
type TransactionKind string

const (
	// TransactionKindCredit is an income transaction, it increases the balance.
	TransactionKindCredit TransactionKind = "credit"
	// TransactionKindDebit is an expense transaction, it decreases the balance.
	TransactionKindDebit TransactionKind = "debit"
)

// Transaction represents a single income or expense record owned by a user.
// Category is a plain name, not a foreign key: deleting a category leaves
// historical transactions untouched.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Kind        TransactionKind
	Amount      decimal.Decimal
	Category    string
	Description string
	Timestamp   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity stamped at the given time.
func NewTransaction(
	userID uuid.UUID,
	kind TransactionKind,
	amount decimal.Decimal,
	category string,
	description string,
	timestamp time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		Amount:      amount,
		Category:    category,
		Description: description,
		Timestamp:   timestamp,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValidTransactionKind reports whether kind is one of the known kinds.
func IsValidTransactionKind(kind TransactionKind) bool {
	return kind == TransactionKindCredit || kind == TransactionKindDebit
}

// TransactionListResult represents one page of a transaction listing.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
