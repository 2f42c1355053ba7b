package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// fakeUserRepository is an in-memory adapter.UserRepository for tests. Lookups
// return (nil, nil) when no user matches, mirroring the persistence layer.
type fakeUserRepository struct {
	users []*entity.User

	created *entity.User
	updated *entity.User

	findErr   error
	createErr error
	updateErr error
}

func (f *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = user
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == login || u.Username == login {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	if f.findErr != nil {
		return false, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepository) EmailTakenByOther(ctx context.Context, email string, userID uuid.UUID) (bool, error) {
	for _, u := range f.users {
		if u.Email == email && u.ID != userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = user
	return nil
}

// fakePasswordService hashes by prefixing, avoiding bcrypt cost in tests.
type fakePasswordService struct {
	hashErr error
}

func (f *fakePasswordService) HashPassword(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + password, nil
}

func (f *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (f *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 6 {
		return errors.New("password too short")
	}
	return nil
}

type fakeTokenService struct {
	generateErr error
}

func (f *fakeTokenService) GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return "token-for-" + email, nil
}

func (f *fakeTokenService) ValidateToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

type fakeGoogleVerifier struct {
	identity *adapter.GoogleIdentity
	err      error
}

func (f *fakeGoogleVerifier) Verify(ctx context.Context, idToken string) (*adapter.GoogleIdentity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

func localUser(username, email, password string) *entity.User {
	return entity.NewLocalUser(username, email, "hashed:"+password, "Test", "User")
}

func authErrorCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	return authErr.Code
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	newUseCase := func(repo *fakeUserRepository) *RegisterUserUseCase {
		return NewRegisterUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})
	}

	valid := RegisterUserInput{
		Username:  "jdoe",
		Email:     "JDoe@Example.com",
		Password:  "secret123",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	t.Run("registers and returns a token", func(t *testing.T) {
		repo := &fakeUserRepository{}
		output, err := newUseCase(repo).Execute(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		user := output.User
		if user.Email != "jdoe@example.com" {
			t.Errorf("expected lowercased email, got %q", user.Email)
		}
		if user.PasswordHash != "hashed:secret123" {
			t.Errorf("expected stored hash, got %q", user.PasswordHash)
		}
		if !user.IsActive {
			t.Error("new accounts must be active")
		}
		if output.Token != "token-for-jdoe@example.com" {
			t.Errorf("unexpected token %q", output.Token)
		}
		if repo.created != user {
			t.Error("expected user to be persisted")
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		input := valid
		input.FirstName = ""

		_, err := newUseCase(&fakeUserRepository{}).Execute(context.Background(), input)
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		if authErr.Code != domainerror.ErrCodeMissingAuthFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingAuthFields, authErr.Code)
		}
		if !strings.Contains(authErr.Message, "all fields are required") {
			t.Errorf("unexpected message %q", authErr.Message)
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		input := valid
		input.Email = "not-an-email"

		_, err := newUseCase(&fakeUserRepository{}).Execute(context.Background(), input)
		if code := authErrorCode(t, err); code != domainerror.ErrCodeMissingAuthFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingAuthFields, code)
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		input := valid
		input.Password = "short"

		_, err := newUseCase(&fakeUserRepository{}).Execute(context.Background(), input)
		if code := authErrorCode(t, err); code != domainerror.ErrCodeWeakPassword {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeakPassword, code)
		}
	})

	t.Run("rejects taken identifiers", func(t *testing.T) {
		repo := &fakeUserRepository{users: []*entity.User{
			localUser("jdoe", "jdoe@example.com", "whatever1"),
		}}

		_, err := newUseCase(repo).Execute(context.Background(), valid)
		if code := authErrorCode(t, err); code != domainerror.ErrCodeEmailExists {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmailExists, code)
		}
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	newUseCase := func(repo *fakeUserRepository) *LoginUserUseCase {
		return NewLoginUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})
	}

	t.Run("logs in by email", func(t *testing.T) {
		user := localUser("jdoe", "jdoe@example.com", "secret123")
		repo := &fakeUserRepository{users: []*entity.User{user}}

		output, err := newUseCase(repo).Execute(context.Background(), LoginUserInput{
			Login:    "  JDoe@Example.com ",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User != user {
			t.Error("expected the stored user")
		}
		if output.Token == "" {
			t.Error("expected a token")
		}
		if repo.updated != user || user.LastLoginAt == nil {
			t.Error("expected last login to be stamped and persisted")
		}
	})

	t.Run("requires login and password", func(t *testing.T) {
		_, err := newUseCase(&fakeUserRepository{}).Execute(context.Background(), LoginUserInput{Login: "jdoe"})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeMissingAuthFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingAuthFields, code)
		}
	})

	t.Run("unknown login is invalid credentials", func(t *testing.T) {
		_, err := newUseCase(&fakeUserRepository{}).Execute(context.Background(), LoginUserInput{
			Login:    "ghost@example.com",
			Password: "secret123",
		})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, code)
		}
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		repo := &fakeUserRepository{users: []*entity.User{
			localUser("jdoe", "jdoe@example.com", "secret123"),
		}}

		_, err := newUseCase(repo).Execute(context.Background(), LoginUserInput{
			Login:    "jdoe@example.com",
			Password: "wrong",
		})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, code)
		}
	})

	t.Run("deactivated accounts cannot log in", func(t *testing.T) {
		user := localUser("jdoe", "jdoe@example.com", "secret123")
		user.IsActive = false
		repo := &fakeUserRepository{users: []*entity.User{user}}

		_, err := newUseCase(repo).Execute(context.Background(), LoginUserInput{
			Login:    "jdoe@example.com",
			Password: "secret123",
		})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, code)
		}
	})

	t.Run("google-only accounts are pointed at google sign-in", func(t *testing.T) {
		user := entity.NewGoogleUser("jdoe@example.com", "google-123", "Jane", "Doe")
		repo := &fakeUserRepository{users: []*entity.User{user}}

		_, err := newUseCase(repo).Execute(context.Background(), LoginUserInput{
			Login:    "jdoe@example.com",
			Password: "secret123",
		})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeNoLocalPassword {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNoLocalPassword, code)
		}
	})
}

func TestGoogleLoginUseCase_Execute(t *testing.T) {
	identity := &adapter.GoogleIdentity{
		GoogleID:  "google-123",
		Email:     "JDoe@Example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	t.Run("provisions a fresh account", func(t *testing.T) {
		repo := &fakeUserRepository{}
		uc := NewGoogleLoginUseCase(repo, &fakeGoogleVerifier{identity: identity}, &fakeTokenService{})

		output, err := uc.Execute(context.Background(), GoogleLoginInput{IDToken: "id-token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		user := output.User
		if repo.created != user {
			t.Error("expected a new account to be persisted")
		}
		if user.Email != "jdoe@example.com" || user.Username != "jdoe" {
			t.Errorf("unexpected identity: %s %s", user.Email, user.Username)
		}
		if user.GoogleID == nil || *user.GoogleID != "google-123" {
			t.Errorf("expected linked google id, got %v", user.GoogleID)
		}
		if user.HasPassword() {
			t.Error("federated accounts must have no local password")
		}
	})

	t.Run("links an existing local account by email", func(t *testing.T) {
		existing := localUser("jdoe", "jdoe@example.com", "secret123")
		repo := &fakeUserRepository{users: []*entity.User{existing}}
		uc := NewGoogleLoginUseCase(repo, &fakeGoogleVerifier{identity: identity}, &fakeTokenService{})

		output, err := uc.Execute(context.Background(), GoogleLoginInput{IDToken: "id-token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User != existing {
			t.Error("expected the existing account")
		}
		if existing.GoogleID == nil || *existing.GoogleID != "google-123" {
			t.Errorf("expected google id to be linked, got %v", existing.GoogleID)
		}
		if !existing.HasPassword() {
			t.Error("linking must keep the local password")
		}
		if repo.created != nil {
			t.Error("no new account should be created")
		}
	})

	t.Run("returning federated user signs straight in", func(t *testing.T) {
		existing := entity.NewGoogleUser("jdoe@example.com", "google-123", "Jane", "Doe")
		repo := &fakeUserRepository{users: []*entity.User{existing}}
		uc := NewGoogleLoginUseCase(repo, &fakeGoogleVerifier{identity: identity}, &fakeTokenService{})

		output, err := uc.Execute(context.Background(), GoogleLoginInput{IDToken: "id-token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User != existing || repo.created != nil {
			t.Error("expected the existing federated account")
		}
	})

	t.Run("rejects an unverifiable token", func(t *testing.T) {
		uc := NewGoogleLoginUseCase(&fakeUserRepository{},
			&fakeGoogleVerifier{err: errors.New("bad token")}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), GoogleLoginInput{IDToken: "garbage"})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidGoogleToken {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidGoogleToken, code)
		}
	})

	t.Run("deactivated accounts are rejected", func(t *testing.T) {
		existing := entity.NewGoogleUser("jdoe@example.com", "google-123", "Jane", "Doe")
		existing.IsActive = false
		repo := &fakeUserRepository{users: []*entity.User{existing}}
		uc := NewGoogleLoginUseCase(repo, &fakeGoogleVerifier{identity: identity}, &fakeTokenService{})

		_, err := uc.Execute(context.Background(), GoogleLoginInput{IDToken: "id-token"})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, code)
		}
	})
}

func TestUpdateProfileUseCase_Execute(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("applies only the provided fields", func(t *testing.T) {
		user := localUser("jdoe", "jdoe@example.com", "secret123")
		repo := &fakeUserRepository{users: []*entity.User{user}}
		uc := NewUpdateProfileUseCase(repo)

		output, err := uc.Execute(context.Background(), UpdateProfileInput{
			UserID:    user.ID,
			FirstName: strPtr("Janet"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.FirstName != "Janet" {
			t.Errorf("expected first name Janet, got %q", output.User.FirstName)
		}
		if output.User.LastName != "User" || output.User.Email != "jdoe@example.com" {
			t.Error("untouched fields must be kept")
		}
		if repo.updated != user {
			t.Error("expected user to be persisted")
		}
	})

	t.Run("rejects an email taken by another user", func(t *testing.T) {
		user := localUser("jdoe", "jdoe@example.com", "secret123")
		other := localUser("other", "other@example.com", "secret123")
		repo := &fakeUserRepository{users: []*entity.User{user, other}}
		uc := NewUpdateProfileUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateProfileInput{
			UserID: user.ID,
			Email:  strPtr("other@example.com"),
		})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeEmailExists {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmailExists, code)
		}
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		user := localUser("jdoe", "jdoe@example.com", "secret123")
		uc := NewUpdateProfileUseCase(&fakeUserRepository{users: []*entity.User{user}})

		_, err := uc.Execute(context.Background(), UpdateProfileInput{
			UserID: user.ID,
			Email:  strPtr("nope"),
		})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeMissingAuthFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingAuthFields, code)
		}
	})

	t.Run("unknown user surfaces as not found", func(t *testing.T) {
		uc := NewUpdateProfileUseCase(&fakeUserRepository{})

		_, err := uc.Execute(context.Background(), UpdateProfileInput{UserID: uuid.New()})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeUserNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUserNotFound, code)
		}
	})
}

func TestChangePasswordUseCase_Execute(t *testing.T) {
	newUseCase := func(repo *fakeUserRepository) *ChangePasswordUseCase {
		return NewChangePasswordUseCase(repo, &fakePasswordService{})
	}

	t.Run("stores the new password hash", func(t *testing.T) {
		user := localUser("jdoe", "jdoe@example.com", "oldsecret")
		repo := &fakeUserRepository{users: []*entity.User{user}}

		err := newUseCase(repo).Execute(context.Background(), ChangePasswordInput{
			UserID:          user.ID,
			CurrentPassword: "oldsecret",
			NewPassword:     "newsecret",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.PasswordHash != "hashed:newsecret" {
			t.Errorf("expected new hash, got %q", user.PasswordHash)
		}
		if repo.updated != user {
			t.Error("expected user to be persisted")
		}
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		user := localUser("jdoe", "jdoe@example.com", "oldsecret")
		repo := &fakeUserRepository{users: []*entity.User{user}}

		err := newUseCase(repo).Execute(context.Background(), ChangePasswordInput{
			UserID:          user.ID,
			CurrentPassword: "wrong",
			NewPassword:     "newsecret",
		})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, code)
		}
	})

	t.Run("rejects a weak new password", func(t *testing.T) {
		user := localUser("jdoe", "jdoe@example.com", "oldsecret")
		repo := &fakeUserRepository{users: []*entity.User{user}}

		err := newUseCase(repo).Execute(context.Background(), ChangePasswordInput{
			UserID:          user.ID,
			CurrentPassword: "oldsecret",
			NewPassword:     "tiny",
		})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeWeakPassword {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeakPassword, code)
		}
	})

	t.Run("google-only accounts cannot change a password", func(t *testing.T) {
		user := entity.NewGoogleUser("jdoe@example.com", "google-123", "Jane", "Doe")
		repo := &fakeUserRepository{users: []*entity.User{user}}

		err := newUseCase(repo).Execute(context.Background(), ChangePasswordInput{
			UserID:          user.ID,
			CurrentPassword: "whatever",
			NewPassword:     "newsecret",
		})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeNoLocalPassword {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNoLocalPassword, code)
		}
	})
}

func TestGetProfileUseCase_Execute(t *testing.T) {
	t.Run("returns the profile", func(t *testing.T) {
		user := localUser("jdoe", "jdoe@example.com", "secret123")
		uc := NewGetProfileUseCase(&fakeUserRepository{users: []*entity.User{user}})

		output, err := uc.Execute(context.Background(), GetProfileInput{UserID: user.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User != user {
			t.Error("expected the stored user")
		}
	})

	t.Run("unknown user surfaces as not found", func(t *testing.T) {
		uc := NewGetProfileUseCase(&fakeUserRepository{})

		_, err := uc.Execute(context.Background(), GetProfileInput{UserID: uuid.New()})
		if code := authErrorCode(t, err); code != domainerror.ErrCodeUserNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUserNotFound, code)
		}
	})
}
