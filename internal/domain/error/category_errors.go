// Package error defines domain-specific errors for the Spendwise API.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is absent or not visible
	// to the caller.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when the name is already taken within
	// the owner scope.
	ErrCategoryNameExists = errors.New("category already exists")

	// ErrCategoryNameRequired is returned when the name is absent.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrInvalidCategoryKind is returned when the kind is not expense, income or both.
	ErrInvalidCategoryKind = errors.New("invalid category kind")

	// ErrDefaultCategoryImmutable is returned on attempts to modify or delete a
	// default category.
	ErrDefaultCategoryImmutable = errors.New("cannot modify default category")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is the class and YYYY the specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameRequired     CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryKind      CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameExists       CategoryErrorCode = "CAT-010003"
	ErrCodeDefaultCategoryImmutable CategoryErrorCode = "CAT-010004"

	// Lookup errors (02XXXX)
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
