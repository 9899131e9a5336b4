package repository

import (
	"context"
	"fmt"

	"github.com/weddingcard/api/internal/database"
	"github.com/weddingcard/api/internal/model"
)

// SessionRepository handles the durable session mirror
type SessionRepository struct {
	db database.Database
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db database.Database) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a session record keyed by its session id.
func (r *SessionRepository) Create(ctx context.Context, session *model.Session) error {
	content, err := toContent(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	delete(content, "session_id")

	query := `CREATE type::thing("session", $id) CONTENT $data`
	vars := map[string]interface{}{
		"id":   session.SessionID,
		"data": content,
	}

	if _, err := r.db.Query(ctx, query, vars); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetBySessionID retrieves a session, returning (nil, nil) when absent.
func (r *SessionRepository) GetBySessionID(ctx context.Context, sessionID string) (*model.Session, error) {
	query := `SELECT * FROM type::thing("session", $id)`
	vars := map[string]interface{}{"id": sessionID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	row, ok := result.(map[string]interface{})
	if ok {
		// The record id is the session id itself.
		if id, found := row["id"]; found {
			row["session_id"] = bareID(convertRecordID(id))
			delete(row, "id")
		}
	}

	var session model.Session
	if err := decodeRecord(result, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &session, nil
}
