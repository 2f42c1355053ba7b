package dto

import (
	"time"

	"github.com/spendwise/backend/internal/application/usecase/transaction"
	"github.com/spendwise/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Kind        string  `json:"kind" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required,max=100"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Timestamp   string  `json:"timestamp,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Updates replace all user-editable fields.
type UpdateTransactionRequest struct {
	Kind        string  `json:"kind" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required,max=100"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Timestamp   string  `json:"timestamp,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
// Amounts are serialized as strings to avoid float precision loss.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// TransactionResponseFromEntity converts a domain Transaction to a TransactionResponse.
func TransactionResponseFromEntity(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID.String(),
		Kind:        string(transaction.Kind),
		Amount:      transaction.Amount.StringFixed(2),
		Category:    transaction.Category,
		Description: transaction.Description,
		Timestamp:   transaction.Timestamp,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}

// TransactionListResponseFromOutput converts a listing output to its response.
func TransactionListResponseFromOutput(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = TransactionResponseFromEntity(t)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Pagination: PaginationResponse{
			Page:  output.Pagination.Page,
			Limit: output.Pagination.Limit,
			Total: output.Pagination.Total,
			Pages: output.Pagination.Pages,
		},
	}
}
