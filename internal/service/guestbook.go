package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/weddingcard/api/internal/model"
)

// GuestbookRepository defines the interface for guestbook storage
type GuestbookRepository interface {
	Create(ctx context.Context, message *model.GuestbookMessage) error
	ListPublic(ctx context.Context) ([]model.GuestbookMessage, error)
	ListByWeddingID(ctx context.Context, weddingID string) ([]model.GuestbookMessage, error)
}

// GuestbookEntry carries a submitted guestbook message before
// classification.
type GuestbookEntry struct {
	WeddingID    string `json:"wedding_id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Message      string `json:"message"`
	IsPublic     *bool  `json:"is_public"`
}

// GuestbookService handles guestbook messages
type GuestbookService struct {
	guestbookRepo GuestbookRepository
	weddingRepo   WeddingRepository
	sessions      *SessionService
}

// NewGuestbookService creates a new guestbook service
func NewGuestbookService(guestbookRepo GuestbookRepository, weddingRepo WeddingRepository, sessions *SessionService) *GuestbookService {
	return &GuestbookService{
		guestbookRepo: guestbookRepo,
		weddingRepo:   weddingRepo,
		sessions:      sessions,
	}
}

// Post records a message from the open endpoint. A message is public
// when it targets the shared landing page (wedding id "public",
// "default", or empty) or when the submitter says so; is_public
// defaults to true when omitted.
func (s *GuestbookService) Post(ctx context.Context, entry *GuestbookEntry) (*model.GuestbookMessage, error) {
	isPublic := true
	if entry.IsPublic != nil {
		isPublic = *entry.IsPublic
	}
	switch entry.WeddingID {
	case model.GuestbookPublicWeddingID, "default", "":
		isPublic = true
	}

	weddingID := entry.WeddingID
	if weddingID == "" {
		weddingID = model.GuestbookPublicWeddingID
	}

	message := &model.GuestbookMessage{
		ID:           uuid.NewString(),
		WeddingID:    weddingID,
		Name:         entry.Name,
		Relationship: entry.Relationship,
		Message:      entry.Message,
		IsPublic:     isPublic,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.guestbookRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// PostPrivate records a message on the session owner's wedding. The
// message is always private regardless of what the submitter sent.
func (s *GuestbookService) PostPrivate(ctx context.Context, sessionID string, entry *GuestbookEntry) (*model.GuestbookMessage, error) {
	userID, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	wedding, err := s.weddingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	message := &model.GuestbookMessage{
		ID:           uuid.NewString(),
		WeddingID:    wedding.ID,
		Name:         entry.Name,
		Relationship: entry.Relationship,
		Message:      entry.Message,
		IsPublic:     false,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.guestbookRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListByWeddingID returns every message for a wedding, newest first.
func (s *GuestbookService) ListByWeddingID(ctx context.Context, weddingID string) ([]model.GuestbookMessage, error) {
	return s.guestbookRepo.ListByWeddingID(ctx, weddingID)
}

// ListPublic returns every public message, newest first.
func (s *GuestbookService) ListPublic(ctx context.Context) ([]model.GuestbookMessage, error) {
	return s.guestbookRepo.ListPublic(ctx)
}

// ListPrivateByWeddingID returns the private messages for a wedding,
// newest first.
func (s *GuestbookService) ListPrivateByWeddingID(ctx context.Context, weddingID string) ([]model.GuestbookMessage, error) {
	messages, err := s.guestbookRepo.ListByWeddingID(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	private := make([]model.GuestbookMessage, 0, len(messages))
	for _, message := range messages {
		if !message.IsPublic {
			private = append(private, message)
		}
	}
	return private, nil
}

// ListByShareableID returns every message for the wedding behind a
// share link.
func (s *GuestbookService) ListByShareableID(ctx context.Context, shareableID string) ([]model.GuestbookMessage, error) {
	wedding, err := s.weddingRepo.GetByShareableID(ctx, shareableID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}
	return s.guestbookRepo.ListByWeddingID(ctx, wedding.ID)
}
