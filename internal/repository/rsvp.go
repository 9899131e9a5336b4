package repository

import (
	"context"
	"fmt"

	"github.com/weddingcard/api/internal/database"
	"github.com/weddingcard/api/internal/model"
)

// RSVPRepository handles RSVP response data access
type RSVPRepository struct {
	db database.Database
}

// NewRSVPRepository creates a new RSVP repository
func NewRSVPRepository(db database.Database) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// Create stores a new RSVP response under its pre-assigned id.
func (r *RSVPRepository) Create(ctx context.Context, rsvp *model.RSVP) error {
	content, err := toContent(rsvp)
	if err != nil {
		return fmt.Errorf("failed to encode rsvp: %w", err)
	}

	query := `CREATE type::thing("rsvp", $id) CONTENT $data`
	vars := map[string]interface{}{
		"id":   rsvp.ID,
		"data": content,
	}

	if _, err := r.db.Query(ctx, query, vars); err != nil {
		return fmt.Errorf("failed to create rsvp: %w", err)
	}
	return nil
}

// ListByWeddingID retrieves all RSVP responses for a wedding.
func (r *RSVPRepository) ListByWeddingID(ctx context.Context, weddingID string) ([]model.RSVP, error) {
	query := `SELECT * FROM rsvp WHERE wedding_id = $wedding_id`
	vars := map[string]interface{}{"wedding_id": weddingID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}

	rows := rowsFromResult(result)
	rsvps := make([]model.RSVP, 0, len(rows))
	for _, row := range rows {
		var rsvp model.RSVP
		if err := decodeRecord(row, &rsvp); err != nil {
			return nil, fmt.Errorf("failed to parse rsvp: %w", err)
		}
		rsvps = append(rsvps, rsvp)
	}
	return rsvps, nil
}
