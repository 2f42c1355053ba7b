package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// GoogleLoginInput carries the Google ID token obtained by the client.
type GoogleLoginInput struct {
	IDToken string
}

// GoogleLoginOutput represents the output of a Google sign-in.
type GoogleLoginOutput struct {
	Token string
	User  *entity.User
}

// GoogleLoginUseCase authenticates a user through a Google ID token,
// creating or linking the local account as needed.
type GoogleLoginUseCase struct {
	userRepo       adapter.UserRepository
	googleVerifier adapter.GoogleVerifier
	tokenService   adapter.TokenService
}

// NewGoogleLoginUseCase creates a new GoogleLoginUseCase instance.
func NewGoogleLoginUseCase(
	userRepo adapter.UserRepository,
	googleVerifier adapter.GoogleVerifier,
	tokenService adapter.TokenService,
) *GoogleLoginUseCase {
	return &GoogleLoginUseCase{
		userRepo:       userRepo,
		googleVerifier: googleVerifier,
		tokenService:   tokenService,
	}
}

// Execute verifies the Google token and signs the user in.
func (uc *GoogleLoginUseCase) Execute(ctx context.Context, input GoogleLoginInput) (*GoogleLoginOutput, error) {
	if strings.TrimSpace(input.IDToken) == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingAuthFields,
			"idToken is required",
			domainerror.ErrMissingAuthFields,
		)
	}

	identity, err := uc.googleVerifier.Verify(ctx, input.IDToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidGoogleToken,
			"invalid Google token",
			domainerror.ErrInvalidGoogleToken,
		)
	}

	user, err := uc.userRepo.FindByGoogleID(ctx, identity.GoogleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by google id: %w", err)
	}

	if user == nil {
		// No account linked yet. Link by email when one exists,
		// otherwise provision a fresh account.
		user, err = uc.userRepo.FindByEmail(ctx, strings.ToLower(identity.Email))
		if err != nil {
			return nil, fmt.Errorf("failed to find user by email: %w", err)
		}
		if user != nil {
			user.LinkGoogleID(identity.GoogleID)
		} else {
			user = entity.NewGoogleUser(identity.Email, identity.GoogleID, identity.FirstName, identity.LastName)
			if err := uc.userRepo.Create(ctx, user); err != nil {
				return nil, err
			}
		}
	}

	if !user.IsActive {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid credentials",
			domainerror.ErrInvalidCredentials,
		)
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	token, err := uc.tokenService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &GoogleLoginOutput{
		Token: token,
		User:  user,
	}, nil
}
