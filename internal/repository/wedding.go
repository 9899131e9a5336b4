package repository

import (
	"context"
	"fmt"

	"github.com/weddingcard/api/internal/database"
	"github.com/weddingcard/api/internal/model"
)

// WeddingRepository handles wedding document data access
type WeddingRepository struct {
	db database.Database
}

// NewWeddingRepository creates a new wedding repository
func NewWeddingRepository(db database.Database) *WeddingRepository {
	return &WeddingRepository{db: db}
}

// Create stores a new wedding document under its pre-assigned id.
func (r *WeddingRepository) Create(ctx context.Context, wedding *model.Wedding) error {
	content, err := toContent(wedding)
	if err != nil {
		return fmt.Errorf("failed to encode wedding: %w", err)
	}

	query := `CREATE type::thing("wedding", $id) CONTENT $data`
	vars := map[string]interface{}{
		"id":   wedding.ID,
		"data": content,
	}

	if _, err := r.db.Query(ctx, query, vars); err != nil {
		return fmt.Errorf("failed to create wedding: %w", err)
	}
	return nil
}

// GetByID retrieves a wedding by id, returning (nil, nil) when absent.
func (r *WeddingRepository) GetByID(ctx context.Context, id string) (*model.Wedding, error) {
	query := `SELECT * FROM type::thing("wedding", $id)`
	vars := map[string]interface{}{"id": id}

	return r.queryOne(ctx, query, vars, "failed to get wedding")
}

// GetByUserID retrieves the owner's wedding, returning (nil, nil) when absent.
func (r *WeddingRepository) GetByUserID(ctx context.Context, userID string) (*model.Wedding, error) {
	query := `SELECT * FROM wedding WHERE user_id = $user_id LIMIT 1`
	vars := map[string]interface{}{"user_id": userID}

	return r.queryOne(ctx, query, vars, "failed to get wedding by user")
}

// GetByShareableID retrieves a wedding by its public share id,
// returning (nil, nil) when absent.
func (r *WeddingRepository) GetByShareableID(ctx context.Context, shareableID string) (*model.Wedding, error) {
	query := `SELECT * FROM wedding WHERE shareable_id = $shareable_id LIMIT 1`
	vars := map[string]interface{}{"shareable_id": shareableID}

	return r.queryOne(ctx, query, vars, "failed to get wedding by shareable id")
}

// Update replaces the stored document wholesale with the given state.
func (r *WeddingRepository) Update(ctx context.Context, wedding *model.Wedding) error {
	content, err := toContent(wedding)
	if err != nil {
		return fmt.Errorf("failed to encode wedding: %w", err)
	}

	query := `UPDATE type::thing("wedding", $id) CONTENT $data`
	vars := map[string]interface{}{
		"id":   wedding.ID,
		"data": content,
	}

	if _, err := r.db.Query(ctx, query, vars); err != nil {
		return fmt.Errorf("failed to update wedding: %w", err)
	}
	return nil
}

func (r *WeddingRepository) queryOne(ctx context.Context, query string, vars map[string]interface{}, msg string) (*model.Wedding, error) {
	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}

	var wedding model.Wedding
	if err := decodeRecord(result, &wedding); err != nil {
		return nil, fmt.Errorf("failed to parse wedding: %w", err)
	}
	return &wedding, nil
}
