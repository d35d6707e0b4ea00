package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for administrator data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (bool, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. It reports false without error when a user with
// the same email already exists.
func (r *userRepository) Create(ctx context.Context, user *model.User) (bool, error) {
	sql := `INSERT INTO users (email, password_hash, role)
            VALUES ($1, $2, $3)
            ON CONFLICT (email) DO NOTHING
            RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, user.Email, user.PasswordHash, user.Role).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return true, nil
}

// FindByEmail retrieves a user by exact email match
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, email, password_hash, role, created_at FROM users WHERE email = $1`
	err := r.db.QueryRow(ctx, sql, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}
