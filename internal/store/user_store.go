package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/isdelr/expense-tracker-be/internal/models"
	"github.com/jmoiron/sqlx"
)

// UserStore persists user credentials.
type UserStore struct {
	db *sqlx.DB
}

// NewUserStore creates a new UserStore.
func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a user. A username or email collision yields ErrDuplicate.
func (s *UserStore) Create(ctx context.Context, user models.User) error {
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES (:id, :username, :email, :password_hash, :created_at)`, user)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID, including the password hash.
func (s *UserStore) GetByID(ctx context.Context, id string) (models.User, error) {
	return s.getOne(ctx, "id", id)
}

// GetByEmail retrieves a user by email, including the password hash.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return s.getOne(ctx, "email", email)
}

// ExistsByEmail reports whether an account is registered under email.
func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, s.db.Rebind("SELECT COUNT(*) FROM users WHERE email = ?"), email)
	if err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return count > 0, nil
}

func (s *UserStore) getOne(ctx context.Context, column, value string) (models.User, error) {
	var user models.User
	query := s.db.Rebind("SELECT id, username, email, password_hash, created_at FROM users WHERE " + column + " = ?")
	if err := s.db.GetContext(ctx, &user, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("select user by %s: %w", column, err)
	}
	return user, nil
}
