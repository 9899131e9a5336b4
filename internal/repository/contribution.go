package repository

import (
	"context"
	"fmt"

	"github.com/weddingcard/api/internal/database"
	"github.com/weddingcard/api/internal/model"
)

// ContributionRepository handles honeymoon fund contribution data access
type ContributionRepository struct {
	db database.Database
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db database.Database) *ContributionRepository {
	return &ContributionRepository{db: db}
}

// Create stores a new contribution under its pre-assigned id.
func (r *ContributionRepository) Create(ctx context.Context, contribution *model.Contribution) error {
	content, err := toContent(contribution)
	if err != nil {
		return fmt.Errorf("failed to encode contribution: %w", err)
	}

	query := `CREATE type::thing("contribution", $id) CONTENT $data`
	vars := map[string]interface{}{
		"id":   contribution.ID,
		"data": content,
	}

	if _, err := r.db.Query(ctx, query, vars); err != nil {
		return fmt.Errorf("failed to create contribution: %w", err)
	}
	return nil
}

// GetByIntentID retrieves the contribution tracking a payment intent,
// returning (nil, nil) when no record matches.
func (r *ContributionRepository) GetByIntentID(ctx context.Context, intentID string) (*model.Contribution, error) {
	query := `SELECT * FROM contribution WHERE stripe_payment_intent_id = $intent_id LIMIT 1`
	vars := map[string]interface{}{"intent_id": intentID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contribution: %w", err)
	}

	var contribution model.Contribution
	if err := decodeRecord(result, &contribution); err != nil {
		return nil, fmt.Errorf("failed to parse contribution: %w", err)
	}
	return &contribution, nil
}

// UpdateStatusByIntentID transitions the contribution tracking a payment
// intent to the given status. Returns database.ErrNotFound when no
// contribution tracks the intent.
func (r *ContributionRepository) UpdateStatusByIntentID(ctx context.Context, intentID string, status model.PaymentStatus) error {
	query := `
		UPDATE contribution
		SET payment_status = $status, updated_at = time::now()
		WHERE stripe_payment_intent_id = $intent_id
		RETURN AFTER
	`
	vars := map[string]interface{}{
		"intent_id": intentID,
		"status":    string(status),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return fmt.Errorf("failed to update contribution status: %w", err)
	}
	if len(rowsFromResult(result)) == 0 {
		return database.ErrNotFound
	}
	return nil
}

// ListByWeddingID retrieves every contribution for a wedding, newest first.
func (r *ContributionRepository) ListByWeddingID(ctx context.Context, weddingID string) ([]model.Contribution, error) {
	query := `SELECT * FROM contribution WHERE wedding_id = $wedding_id ORDER BY created_at DESC`
	vars := map[string]interface{}{"wedding_id": weddingID}
	return r.list(ctx, query, vars)
}

// ListCompletedByWeddingID retrieves the completed contributions for a wedding.
func (r *ContributionRepository) ListCompletedByWeddingID(ctx context.Context, weddingID string) ([]model.Contribution, error) {
	query := `SELECT * FROM contribution WHERE wedding_id = $wedding_id AND payment_status = $status`
	vars := map[string]interface{}{
		"wedding_id": weddingID,
		"status":     string(model.PaymentStatusCompleted),
	}
	return r.list(ctx, query, vars)
}

func (r *ContributionRepository) list(ctx context.Context, query string, vars map[string]interface{}) ([]model.Contribution, error) {
	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	rows := rowsFromResult(result)
	contributions := make([]model.Contribution, 0, len(rows))
	for _, row := range rows {
		var contribution model.Contribution
		if err := decodeRecord(row, &contribution); err != nil {
			return nil, fmt.Errorf("failed to parse contribution: %w", err)
		}
		contributions = append(contributions, contribution)
	}
	return contributions, nil
}
