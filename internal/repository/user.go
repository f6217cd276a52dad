package repository

import (
	"context"
	"fmt"

	"github.com/abidbilal/deskservice/internal/entity"
)

// UserRepository persists staff accounts.
type UserRepository struct {
	db DB
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and returns the assigned identifier.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) (int64, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING user_id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, user.Username, user.PasswordHash).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("creating user: %w", err)
	}

	return id, nil
}

// FindByUsername looks up a user by username. A missing row surfaces as
// pgx.ErrNoRows for the caller to classify.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT user_id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`

	var u entity.User
	err := r.db.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("finding user %q: %w", username, err)
	}

	return &u, nil
}
