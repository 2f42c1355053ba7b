// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error in API responses. Clients display the
// message verbatim; the code is for programmatic use.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// MessageResponse represents a simple acknowledgement in API responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// PaginationResponse represents pagination information in API responses.
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}
