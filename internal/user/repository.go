package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/user/repository.go -package=mock_user

// UserRepository defines operations for managing user accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, username, role string) (*User, error)
}

// DBUserRepository implements UserRepository using MySQL.
type DBUserRepository struct {
	db *sqlx.DB
}

// NewDBUserRepository creates a new DBUserRepository.
func NewDBUserRepository(db *sqlx.DB) *DBUserRepository {
	return &DBUserRepository{db: db}
}

// FindByID returns the user with the given id, or nil when none exists.
func (r *DBUserRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, "SELECT id, username, role, created_at FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id(%d): %w", id, err)
	}
	return &u, nil
}

// FindByUsername returns the user with the given username, or nil when none exists.
func (r *DBUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, "SELECT id, username, role, created_at FROM users WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by username(%s): %w", username, err)
	}
	return &u, nil
}

// Create inserts a new user and returns it with the assigned id.
func (r *DBUserRepository) Create(ctx context.Context, username, role string) (*User, error) {
	result, err := r.db.ExecContext(ctx, "INSERT INTO users (username, role) VALUES (?, ?)", username, role)
	if err != nil {
		return nil, fmt.Errorf("insert user(%s): %w", username, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id for user(%s): %w", username, err)
	}
	return &User{ID: id, Username: username, Role: role}, nil
}
