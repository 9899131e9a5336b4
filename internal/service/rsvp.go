package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/weddingcard/api/internal/model"
)

// RSVPRepository defines the interface for RSVP storage
type RSVPRepository interface {
	Create(ctx context.Context, rsvp *model.RSVP) error
	ListByWeddingID(ctx context.Context, weddingID string) ([]model.RSVP, error)
}

// RSVPService handles guest RSVP submissions
type RSVPService struct {
	rsvpRepo    RSVPRepository
	weddingRepo WeddingRepository
}

// NewRSVPService creates a new RSVP service
func NewRSVPService(rsvpRepo RSVPRepository, weddingRepo WeddingRepository) *RSVPService {
	return &RSVPService{rsvpRepo: rsvpRepo, weddingRepo: weddingRepo}
}

// Submit records a guest response. Submission is open to anyone; the
// wedding id is taken as given and a guest count below one falls back
// to one.
func (s *RSVPService) Submit(ctx context.Context, rsvp *model.RSVP) (*model.RSVP, error) {
	rsvp.ID = uuid.NewString()
	if rsvp.GuestCount < 1 {
		rsvp.GuestCount = 1
	}
	rsvp.SubmittedAt = time.Now().UTC()

	if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
		return nil, err
	}
	return rsvp, nil
}

// ListByWeddingID returns every response recorded for a wedding.
func (s *RSVPService) ListByWeddingID(ctx context.Context, weddingID string) ([]model.RSVP, error) {
	return s.rsvpRepo.ListByWeddingID(ctx, weddingID)
}

// ListByShareableID returns every response for the wedding behind a
// share link. Unknown share ids are an error, unlike the direct listing.
func (s *RSVPService) ListByShareableID(ctx context.Context, shareableID string) ([]model.RSVP, error) {
	wedding, err := s.weddingRepo.GetByShareableID(ctx, shareableID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}
	return s.rsvpRepo.ListByWeddingID(ctx, wedding.ID)
}
