package repository

import (
	"context"
	"fmt"

	"github.com/weddingcard/api/internal/database"
	"github.com/weddingcard/api/internal/model"
)

// GuestbookRepository handles guestbook message data access
type GuestbookRepository struct {
	db database.Database
}

// NewGuestbookRepository creates a new guestbook repository
func NewGuestbookRepository(db database.Database) *GuestbookRepository {
	return &GuestbookRepository{db: db}
}

// Create stores a new guestbook message under its pre-assigned id.
func (r *GuestbookRepository) Create(ctx context.Context, message *model.GuestbookMessage) error {
	content, err := toContent(message)
	if err != nil {
		return fmt.Errorf("failed to encode guestbook message: %w", err)
	}

	query := `CREATE type::thing("guestbook", $id) CONTENT $data`
	vars := map[string]interface{}{
		"id":   message.ID,
		"data": content,
	}

	if _, err := r.db.Query(ctx, query, vars); err != nil {
		return fmt.Errorf("failed to create guestbook message: %w", err)
	}
	return nil
}

// ListPublic retrieves every public message, newest first.
func (r *GuestbookRepository) ListPublic(ctx context.Context) ([]model.GuestbookMessage, error) {
	query := `SELECT * FROM guestbook WHERE is_public = true ORDER BY created_at DESC`
	return r.list(ctx, query, nil)
}

// ListByWeddingID retrieves every message tied to a wedding, newest first.
func (r *GuestbookRepository) ListByWeddingID(ctx context.Context, weddingID string) ([]model.GuestbookMessage, error) {
	query := `SELECT * FROM guestbook WHERE wedding_id = $wedding_id ORDER BY created_at DESC`
	vars := map[string]interface{}{"wedding_id": weddingID}
	return r.list(ctx, query, vars)
}

func (r *GuestbookRepository) list(ctx context.Context, query string, vars map[string]interface{}) ([]model.GuestbookMessage, error) {
	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list guestbook messages: %w", err)
	}

	rows := rowsFromResult(result)
	messages := make([]model.GuestbookMessage, 0, len(rows))
	for _, row := range rows {
		var message model.GuestbookMessage
		if err := decodeRecord(row, &message); err != nil {
			return nil, fmt.Errorf("failed to parse guestbook message: %w", err)
		}
		messages = append(messages, message)
	}
	return messages, nil
}
