// Package error defines domain-specific errors for the Spendwise API.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is absent or not owned by
	// the caller.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when a budget for the same category
	// and period already exists.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category and period")

	// ErrMissingBudgetFields is returned when category, amount, period or year
	// is absent.
	ErrMissingBudgetFields = errors.New("missing required budget fields")

	// ErrInvalidBudgetPeriod is returned when the period is not monthly or yearly.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidBudgetAmount is returned when the amount is not positive.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrMonthRequired is returned when a monthly budget has no month.
	ErrMonthRequired = errors.New("month is required for monthly budgets")

	// ErrInvalidBudgetMonth is returned when the month is outside 1..12.
	ErrInvalidBudgetMonth = errors.New("month must be between 1 and 12")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is the class and YYYY the specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingBudgetFields BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetPeriod BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetAmount BudgetErrorCode = "BGT-010003"
	ErrCodeMonthRequired       BudgetErrorCode = "BGT-010004"
	ErrCodeInvalidBudgetMonth  BudgetErrorCode = "BGT-010005"
	ErrCodeBudgetAlreadyExists BudgetErrorCode = "BGT-010006"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BGT-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
