// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user. Unique-index violations on email, username or
	// google_id surface as the matching domain error.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByLogin retrieves a user by email or username.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByGoogleID retrieves a user by federated identity.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// ExistsByEmailOrUsername checks whether either identifier is taken.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// EmailTakenByOther checks whether the email belongs to a different user.
	EmailTakenByOther(ctx context.Context, email string, userID uuid.UUID) (bool, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error
}
