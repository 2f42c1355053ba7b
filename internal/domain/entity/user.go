// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an account in the system. A user is either local (password
// hash set) or federated (Google ID set); linking a Google identity to an
// existing local account leaves both set.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string  // empty for Google-only accounts
	GoogleID     *string // nil for local accounts
	FirstName    string
	LastName     string
	IsActive     bool
	LastLoginAt  *time.Time // nil until the first sign-in
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewLocalUser creates a password-based User.
func NewLocalUser(username, email, passwordHash, firstName, lastName string) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     true,
		LastLoginAt:  &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewGoogleUser creates a federated User with no local password. The username
// is derived from the email local part.
func NewGoogleUser(email, googleID, firstName, lastName string) *User {
	now := time.Now().UTC()
	email = strings.ToLower(email)
	username := email
	if at := strings.Index(email, "@"); at > 0 {
		username = email[:at]
	}

	return &User{
		ID:          uuid.New(),
		Username:    username,
		Email:       email,
		GoogleID:    &googleID,
		FirstName:   firstName,
		LastName:    lastName,
		IsActive:    true,
		LastLoginAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasPassword reports whether the account can authenticate with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// LinkGoogleID attaches a federated identity to the account.
func (u *User) LinkGoogleID(googleID string) {
	u.GoogleID = &googleID
	u.UpdatedAt = time.Now().UTC()
}
