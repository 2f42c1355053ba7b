package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for updating the current profile.
// Nil pointers leave the corresponding field untouched.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName *string
	LastName  *string
	Email     *string
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles partial updates to the authenticated
// user's profile.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

// Execute applies the profile changes.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if !isValidEmail(email) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeMissingAuthFields,
				"invalid email format",
				domainerror.ErrMissingAuthFields,
			)
		}
		if email != user.Email {
			taken, err := uc.userRepo.EmailTakenByOther(ctx, email, user.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check email availability: %w", err)
			}
			if taken {
				return nil, domainerror.NewAuthError(
					domainerror.ErrCodeEmailExists,
					"email already in use",
					domainerror.ErrEmailAlreadyExists,
				)
			}
			user.Email = email
		}
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &UpdateProfileOutput{User: user}, nil
}
