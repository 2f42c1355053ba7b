// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the validated claims from a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for bearer token operations.
type TokenService interface {
	// GenerateToken creates a signed, time-limited bearer token for the user.
	GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateToken validates a bearer token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}

// GoogleIdentity is the subset of a verified Google ID token the system uses.
type GoogleIdentity struct {
	GoogleID  string
	Email     string
	FirstName string
	LastName  string
}

// GoogleVerifier verifies a Google-issued ID token against the configured
// OAuth client ID and extracts the federated identity.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}
