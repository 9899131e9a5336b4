package repository

import (
	"context"
	"fmt"

	"github.com/weddingcard/api/internal/database"
	"github.com/weddingcard/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create stores a new user under its pre-assigned id.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	content, err := toContent(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	query := `CREATE type::thing("user", $id) CONTENT $data`
	vars := map[string]interface{}{
		"id":   user.ID,
		"data": content,
	}

	if _, err := r.db.Query(ctx, query, vars); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by id, returning (nil, nil) when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::thing("user", $id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user model.User
	if err := decodeRecord(result, &user); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by username, returning (nil, nil) when absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT * FROM user WHERE username = $username LIMIT 1`
	vars := map[string]interface{}{"username": username}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	var user model.User
	if err := decodeRecord(result, &user); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return &user, nil
}

// GetByCredentials retrieves the user matching both username and
// password, returning (nil, nil) when no pair matches.
func (r *UserRepository) GetByCredentials(ctx context.Context, username, password string) (*model.User, error) {
	query := `SELECT * FROM user WHERE username = $username AND password = $password LIMIT 1`
	vars := map[string]interface{}{
		"username": username,
		"password": password,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by credentials: %w", err)
	}

	var user model.User
	if err := decodeRecord(result, &user); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return &user, nil
}
