package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/weddingcard/api/internal/model"
)

// SessionRepository defines the interface for the durable session mirror
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.Session, error)
}

// SessionCache holds live sessions for fast lookups. Implementations
// must be safe for concurrent use.
type SessionCache interface {
	Put(session *model.Session)
	Get(sessionID string) (*model.Session, bool)
}

// memoryCache is the default in-process session cache.
type memoryCache struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

// NewMemoryCache creates an empty in-process session cache.
func NewMemoryCache() SessionCache {
	return &memoryCache{sessions: make(map[string]*model.Session)}
}

func (c *memoryCache) Put(session *model.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[session.SessionID] = session
}

func (c *memoryCache) Get(sessionID string) (*model.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	session, ok := c.sessions[sessionID]
	return session, ok
}

// SessionService manages login sessions. The cache is authoritative for
// the life of the process; every session is also mirrored to the
// database so it survives restarts. Sessions do not expire and are
// never deleted.
type SessionService struct {
	cache       SessionCache
	sessionRepo SessionRepository
	logger      *slog.Logger

	// mirror timeout for the background write
	mirrorTimeout time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(cache SessionCache, sessionRepo SessionRepository, logger *slog.Logger) *SessionService {
	return &SessionService{
		cache:         cache,
		sessionRepo:   sessionRepo,
		logger:        logger,
		mirrorTimeout: 5 * time.Second,
	}
}

// Create mints a new session for the user, caches it, and mirrors it to
// the database in the background. A mirror failure is logged and
// swallowed; the session stays valid for this process either way.
func (s *SessionService) Create(userID string) *model.Session {
	session := &model.Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	s.cache.Put(session)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.mirrorTimeout)
		defer cancel()
		if err := s.sessionRepo.Create(ctx, session); err != nil {
			s.logger.Warn("failed to mirror session to database",
				"session_id", session.SessionID,
				"error", err,
			)
		}
	}()

	return session
}

// Resolve maps a session id to the owning user id. It checks the cache
// first, then falls back to the durable mirror and restores a hit into
// the cache. Returns ErrInvalidSession when the id is unknown to both.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrInvalidSession
	}

	if session, ok := s.cache.Get(sessionID); ok {
		return session.UserID, nil
	}

	session, err := s.sessionRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		s.logger.Warn("failed to look up session in database",
			"session_id", sessionID,
			"error", err,
		)
		return "", ErrInvalidSession
	}
	if session == nil {
		return "", ErrInvalidSession
	}

	s.cache.Put(session)
	return session.UserID, nil
}
