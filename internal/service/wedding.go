package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/weddingcard/api/internal/model"
)

// WeddingRepository defines the interface for wedding storage
type WeddingRepository interface {
	Create(ctx context.Context, wedding *model.Wedding) error
	GetByID(ctx context.Context, id string) (*model.Wedding, error)
	GetByUserID(ctx context.Context, userID string) (*model.Wedding, error)
	GetByShareableID(ctx context.Context, shareableID string) (*model.Wedding, error)
	Update(ctx context.Context, wedding *model.Wedding) error
}

// BackupReader defines the read side of the file-backed mirror, used as
// the second step of the public resolver chain.
type BackupReader interface {
	WeddingByID(id string) (*model.Wedding, error)
	WeddingByShareableID(shareableID string) (*model.Wedding, error)
}

// PartyUpdate carries a partial update for the three party lists. Nil
// slices are left untouched.
type PartyUpdate struct {
	BridalParty  []model.PartyMember `json:"bridal_party"`
	GroomParty   []model.PartyMember `json:"groom_party"`
	SpecialRoles []model.PartyMember `json:"special_roles"`
}

// WeddingService handles wedding document operations
type WeddingService struct {
	weddingRepo WeddingRepository
	userRepo    UserRepository
	sessions    *SessionService
	backup      BackupStore
	backupRead  BackupReader
	logger      *slog.Logger
}

// WeddingServiceConfig holds configuration for the wedding service
type WeddingServiceConfig struct {
	WeddingRepo WeddingRepository
	UserRepo    UserRepository
	Sessions    *SessionService
	Backup      BackupStore
	BackupRead  BackupReader
	Logger      *slog.Logger
}

// NewWeddingService creates a new wedding service
func NewWeddingService(cfg WeddingServiceConfig) *WeddingService {
	return &WeddingService{
		weddingRepo: cfg.WeddingRepo,
		userRepo:    cfg.UserRepo,
		sessions:    cfg.Sessions,
		backup:      cfg.Backup,
		backupRead:  cfg.BackupRead,
		logger:      cfg.Logger,
	}
}

// Create builds a wedding document for the session owner from the given
// fields. Fails with ErrWeddingExists when the user already has one.
func (s *WeddingService) Create(ctx context.Context, sessionID string, update *model.WeddingUpdate) (*model.Wedding, error) {
	userID, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := s.weddingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrWeddingExists
	}

	now := time.Now().UTC()
	wedding := &model.Wedding{
		ID:             uuid.NewString(),
		UserID:         userID,
		ShareableID:    uuid.NewString()[:8],
		StoryTimeline:  []model.TimelineEntry{},
		ScheduleEvents: []model.ScheduleEvent{},
		GalleryPhotos:  []model.GalleryPhoto{},
		BridalParty:    []model.PartyMember{},
		GroomParty:     []model.PartyMember{},
		SpecialRoles:   []model.PartyMember{},
		RegistryItems:  []model.RegistryItem{},
		FAQs:           []model.FAQ{},
		Theme:          string(model.ThemeClassic),
		RSVPResponses:  []model.RSVP{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	update.Apply(wedding)

	if err := s.weddingRepo.Create(ctx, wedding); err != nil {
		return nil, err
	}
	s.mirror(wedding)
	return wedding, nil
}

// Update merges the given fields into the session owner's wedding.
// The id, owner, shareable id, and creation timestamp are preserved no
// matter what the update carries.
func (s *WeddingService) Update(ctx context.Context, sessionID string, update *model.WeddingUpdate) (*model.Wedding, error) {
	wedding, err := s.ownWedding(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	update.Apply(wedding)
	wedding.UpdatedAt = time.Now().UTC()

	if err := s.weddingRepo.Update(ctx, wedding); err != nil {
		return nil, err
	}
	s.mirror(wedding)
	return wedding, nil
}

// GetOwn returns the session owner's wedding document, including the
// owner-only fields the public resolvers strip.
func (s *WeddingService) GetOwn(ctx context.Context, sessionID string) (*model.Wedding, error) {
	return s.ownWedding(ctx, sessionID)
}

// UpdateParty replaces the party lists present in the update.
func (s *WeddingService) UpdateParty(ctx context.Context, sessionID string, update *PartyUpdate) (*model.Wedding, error) {
	wedding, err := s.ownWedding(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if update.BridalParty != nil {
		wedding.BridalParty = update.BridalParty
	}
	if update.GroomParty != nil {
		wedding.GroomParty = update.GroomParty
	}
	if update.SpecialRoles != nil {
		wedding.SpecialRoles = update.SpecialRoles
	}
	wedding.UpdatedAt = time.Now().UTC()

	if err := s.weddingRepo.Update(ctx, wedding); err != nil {
		return nil, err
	}
	s.mirror(wedding)
	return wedding, nil
}

// UpdateFAQs replaces the FAQ list when one is supplied.
func (s *WeddingService) UpdateFAQs(ctx context.Context, sessionID string, faqs []model.FAQ) (*model.Wedding, error) {
	wedding, err := s.ownWedding(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if faqs != nil {
		wedding.FAQs = faqs
	}
	wedding.UpdatedAt = time.Now().UTC()

	if err := s.weddingRepo.Update(ctx, wedding); err != nil {
		return nil, err
	}
	s.mirror(wedding)
	return wedding, nil
}

// UpdateTheme switches the card theme. Only the fixed theme names are
// accepted.
func (s *WeddingService) UpdateTheme(ctx context.Context, sessionID, theme string) (*model.Wedding, error) {
	if !model.IsValidTheme(theme) {
		return nil, ErrInvalidTheme
	}

	wedding, err := s.ownWedding(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	wedding.Theme = theme
	wedding.UpdatedAt = time.Now().UTC()

	if err := s.weddingRepo.Update(ctx, wedding); err != nil {
		return nil, err
	}
	s.mirror(wedding)
	return wedding, nil
}

// UpdateRegistry replaces the honeymoon fund configuration.
func (s *WeddingService) UpdateRegistry(ctx context.Context, sessionID string, fund model.HoneymoonFund) error {
	wedding, err := s.ownWedding(ctx, sessionID)
	if err != nil {
		return err
	}

	wedding.HoneymoonFund = fund
	wedding.UpdatedAt = time.Now().UTC()

	if err := s.weddingRepo.Update(ctx, wedding); err != nil {
		return err
	}
	s.mirror(wedding)
	return nil
}

// PublicByID resolves a wedding id to its sanitized projection, trying
// the primary store first and the file backup second.
func (s *WeddingService) PublicByID(ctx context.Context, weddingID string) (*model.PublicWedding, error) {
	wedding, err := s.weddingRepo.GetByID(ctx, weddingID)
	if err != nil {
		s.logger.Warn("primary wedding lookup failed, trying backup", "wedding_id", weddingID, "error", err)
	}
	if wedding == nil {
		wedding, _ = s.backupRead.WeddingByID(weddingID)
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}
	return wedding.Public(), nil
}

// PublicByShareableID resolves a share link id to the sanitized
// projection, with the same primary-then-backup chain.
func (s *WeddingService) PublicByShareableID(ctx context.Context, shareableID string) (*model.PublicWedding, error) {
	wedding, err := s.weddingRepo.GetByShareableID(ctx, shareableID)
	if err != nil {
		s.logger.Warn("primary wedding lookup failed, trying backup", "shareable_id", shareableID, "error", err)
	}
	if wedding == nil {
		wedding, _ = s.backupRead.WeddingByShareableID(shareableID)
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}
	return wedding.Public(), nil
}

// PublicByUsername resolves a username to the owner's sanitized wedding.
// An unknown username is an error; a known user without a customized
// wedding gets the showcase card.
func (s *WeddingService) PublicByUsername(ctx context.Context, username string) (*model.PublicWedding, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	wedding, err := s.weddingRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return ShowcaseWedding(), nil
	}
	return wedding.Public(), nil
}

// SectionByUsername resolves a username to the sanitized wedding with
// section-routing metadata attached.
func (s *WeddingService) SectionByUsername(ctx context.Context, username, section string) (*model.PublicWedding, error) {
	public, err := s.PublicByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	public.CurrentSection = section
	public.Username = username
	return public, nil
}

// RegistryByWeddingID returns the honeymoon fund configuration of a
// wedding for public viewing.
func (s *WeddingService) RegistryByWeddingID(ctx context.Context, weddingID string) (model.HoneymoonFund, error) {
	wedding, err := s.weddingRepo.GetByID(ctx, weddingID)
	if err != nil {
		return model.HoneymoonFund{}, err
	}
	if wedding == nil {
		return model.HoneymoonFund{}, ErrWeddingNotFound
	}
	return wedding.HoneymoonFund, nil
}

// RegistryByShareableID returns the honeymoon fund configuration behind
// a share link.
func (s *WeddingService) RegistryByShareableID(ctx context.Context, shareableID string) (model.HoneymoonFund, error) {
	wedding, err := s.weddingRepo.GetByShareableID(ctx, shareableID)
	if err != nil {
		return model.HoneymoonFund{}, err
	}
	if wedding == nil {
		return model.HoneymoonFund{}, ErrWeddingNotFound
	}
	return wedding.HoneymoonFund, nil
}

func (s *WeddingService) ownWedding(ctx context.Context, sessionID string) (*model.Wedding, error) {
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
	return wedding, nil
}

func (s *WeddingService) mirror(wedding *model.Wedding) {
	if err := s.backup.SaveWedding(wedding); err != nil {
		s.logger.Warn("failed to mirror wedding to backup store", "wedding_id", wedding.ID, "error", err)
	}
}
