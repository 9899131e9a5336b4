package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/weddingcard/api/internal/model"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByCredentials(ctx context.Context, username, password string) (*model.User, error)
}

// BackupStore defines the interface for the file-backed mirror. All
// writes are best effort; a failure never fails the request.
type BackupStore interface {
	SaveUser(user *model.User) error
	SaveWedding(wedding *model.Wedding) error
}

// AuthService handles registration and login
type AuthService struct {
	userRepo    UserRepository
	weddingRepo WeddingRepository
	sessions    *SessionService
	backup      BackupStore
	logger      *slog.Logger
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo    UserRepository
	WeddingRepo WeddingRepository
	Sessions    *SessionService
	Backup      BackupStore
	Logger      *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:    cfg.UserRepo,
		weddingRepo: cfg.WeddingRepo,
		sessions:    cfg.Sessions,
		backup:      cfg.Backup,
		logger:      cfg.Logger,
	}
}

// AuthResult represents a successful registration or login
type AuthResult struct {
	SessionID string
	UserID    string
	Username  string
}

// Register creates a new account, seeds its starter wedding document,
// and opens a session. Usernames are unique; the password is stored
// exactly as supplied.
func (s *AuthService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	s.mirrorUser(user)

	wedding := NewDefaultWedding(user.ID)
	wedding.ID = uuid.NewString()
	wedding.ShareableID = uuid.NewString()[:8]
	if err := s.weddingRepo.Create(ctx, wedding); err != nil {
		return nil, err
	}
	s.mirrorWedding(wedding)

	session := s.sessions.Create(user.ID)
	return &AuthResult{
		SessionID: session.SessionID,
		UserID:    user.ID,
		Username:  user.Username,
	}, nil
}

// Login checks the credentials and opens a session. A wrong username
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByCredentials(ctx, strings.TrimSpace(username), password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	session := s.sessions.Create(user.ID)
	return &AuthResult{
		SessionID: session.SessionID,
		UserID:    user.ID,
		Username:  user.Username,
	}, nil
}

// Profile returns the account owning the session.
func (s *AuthService) Profile(ctx context.Context, sessionID string) (*model.User, error) {
	userID, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) mirrorUser(user *model.User) {
	if err := s.backup.SaveUser(user); err != nil {
		s.logger.Warn("failed to mirror user to backup store", "user_id", user.ID, "error", err)
	}
}

func (s *AuthService) mirrorWedding(wedding *model.Wedding) {
	if err := s.backup.SaveWedding(wedding); err != nil {
		s.logger.Warn("failed to mirror wedding to backup store", "wedding_id", wedding.ID, "error", err)
	}
}
