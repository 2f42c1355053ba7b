// Package error defines domain-specific errors for the Spendwise API.
package error

import "errors"

// Report domain errors.
var (
	// ErrReportFetchFailed is returned when an aggregation query fails.
	ErrReportFetchFailed = errors.New("failed to fetch report data")

	// ErrInvalidReportRange is returned when the end of a range precedes its start.
	ErrInvalidReportRange = errors.New("end date must not precede start date")

	// ErrInvalidReportYear is returned when the year parameter is not a number.
	ErrInvalidReportYear = errors.New("invalid year")

	// ErrInvalidReportMonth is returned when the month parameter is outside 1..12.
	ErrInvalidReportMonth = errors.New("invalid month")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is the class and YYYY the specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportRange ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportYear  ReportErrorCode = "RPT-010002"
	ErrCodeInvalidReportMonth ReportErrorCode = "RPT-010003"

	// Query errors (02XXXX)
	ErrCodeReportFetchFailed ReportErrorCode = "RPT-020001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
