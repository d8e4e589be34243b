package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/expense-tracker-be/internal/auth"
	"github.com/isdelr/expense-tracker-be/internal/models"
	"github.com/isdelr/expense-tracker-be/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used for new password hashes.
const PasswordCost = 10

// UserRepository is the credential store used by AuthService.
type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AuthServiceProvider defines the interface for authentication services.
type AuthServiceProvider interface {
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (token string, username string, err error)
	Me(ctx context.Context, principal auth.Principal) (models.User, error)
}

// ErrTokensDisabled is returned by Login when the service was built without a
// TokenManager, as done by tools that only register accounts.
var ErrTokensDisabled = errors.New("token issuing is not configured")

// AuthService registers users and exchanges credentials for bearer tokens.
type AuthService struct {
	users  UserRepository
	tokens *auth.TokenManager
	events EventServiceProvider
}

// NewAuthService creates a new AuthService. tokens may be nil when the
// service is only used to register accounts.
func NewAuthService(users UserRepository, tokens *auth.TokenManager, events EventServiceProvider) *AuthService {
	return &AuthService{users: users, tokens: tokens, events: events}
}

// Register creates a new user, hashing their password. Email and username
// must be unused.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return models.User{}, newError(ErrValidation, "All fields are required")
	}

	// Fast path only; the unique constraint below is authoritative.
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, newError(ErrConflict, "User already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.User{}, newError(ErrConflict, "User already exists")
		}
		return models.User{}, err
	}

	s.events.Record(ctx, user.ID, "user.register", LevelInfo, fmt.Sprintf("Account '%s' created.", user.Username))

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", "", newError(ErrValidation, "Email and password required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", "", newError(ErrInvalidCredentials, "Invalid credentials")
		}
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.events.Record(ctx, user.ID, "user.login.fail", LevelWarn, "Failed login attempt.")
		return "", "", newError(ErrInvalidCredentials, "Invalid credentials")
	}

	if s.tokens == nil {
		return "", "", ErrTokensDisabled
	}
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", "", err
	}

	s.events.Record(ctx, user.ID, "user.login", LevelInfo, "Signed in.")
	return token, user.Username, nil
}

// Me returns the profile of the authenticated user.
func (s *AuthService) Me(ctx context.Context, principal auth.Principal) (models.User, error) {
	user, err := s.users.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, newError(ErrNotFound, "User not found")
		}
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}
