package adapters

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/spendwise/backend/internal/application/adapter"
)

// googleVerifier implements the adapter.GoogleVerifier interface using
// Google's ID token validation endpoint.
type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier creates a new Google verifier for the given OAuth client ID.
func NewGoogleVerifier(clientID string) adapter.GoogleVerifier {
	return &googleVerifier{
		clientID: clientID,
	}
}

// Verify validates the ID token signature and audience and extracts the
// federated identity claims.
func (v *googleVerifier) Verify(ctx context.Context, token string) (*adapter.GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate google id token: %w", err)
	}

	sub, _ := payload.Claims["sub"].(string)
	email, _ := payload.Claims["email"].(string)
	if sub == "" || email == "" {
		return nil, fmt.Errorf("google id token missing required claims")
	}

	firstName, _ := payload.Claims["given_name"].(string)
	lastName, _ := payload.Claims["family_name"].(string)

	return &adapter.GoogleIdentity{
		GoogleID:  sub,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}
