// Package error defines domain-specific errors for the Spendwise API.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when login verification fails.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDeactivated is returned when the account is marked inactive.
	ErrAccountDeactivated = errors.New("account is deactivated")

	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyTaken is returned when registering with a taken username.
	ErrUsernameAlreadyTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when a user record is absent.
	ErrUserNotFound = errors.New("user not found")

	// ErrMissingAuthFields is returned when required registration fields are absent.
	ErrMissingAuthFields = errors.New("missing required fields")

	// ErrWeakPassword is returned when a password is below the minimum length.
	ErrWeakPassword = errors.New("password too short")

	// ErrInvalidGoogleToken is returned when a Google ID token fails verification.
	ErrInvalidGoogleToken = errors.New("invalid google id token")

	// ErrNoLocalPassword is returned when a Google-only account attempts a
	// password change.
	ErrNoLocalPassword = errors.New("account has no local password")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is the class and YYYY the specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingAuthFields AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword      AuthErrorCode = "AUTH-010002"
	ErrCodeEmailExists       AuthErrorCode = "AUTH-010003"
	ErrCodeUsernameTaken     AuthErrorCode = "AUTH-010004"
	ErrCodeNoLocalPassword   AuthErrorCode = "AUTH-010005"

	// Authentication errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeAccountDeactivated AuthErrorCode = "AUTH-020002"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-020003"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-020004"
	ErrCodeInvalidGoogleToken AuthErrorCode = "AUTH-020005"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020006"

	// Lookup errors (03XXXX)
	ErrCodeUserNotFound AuthErrorCode = "AUTH-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
