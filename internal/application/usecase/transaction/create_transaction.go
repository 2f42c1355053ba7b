// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
// Timestamp defaults to the submission time when zero.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Kind        entity.TransactionKind
	Amount      decimal.Decimal
	Category    string
	Description string
	Timestamp   time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Kind, input.Amount, input.Category); err != nil {
		return nil, err
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	txn := entity.NewTransaction(
		input.UserID,
		input.Kind,
		input.Amount,
		strings.TrimSpace(input.Category),
		input.Description,
		timestamp,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// validateTransactionFields checks the required fields shared by create and update.
func validateTransactionFields(kind entity.TransactionKind, amount decimal.Decimal, category string) error {
	var messages []string
	if kind == "" {
		messages = append(messages, "kind is required")
	} else if !entity.IsValidTransactionKind(kind) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"kind must be credit or debit",
			domainerror.ErrInvalidTransactionKind,
		)
	}
	if strings.TrimSpace(category) == "" {
		messages = append(messages, "category is required")
	}
	if len(messages) > 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			strings.Join(messages, ", "),
			domainerror.ErrMissingTransactionFields,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a positive number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}
