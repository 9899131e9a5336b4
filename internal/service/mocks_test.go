package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/weddingcard/api/internal/database"
	"github.com/weddingcard/api/internal/model"
)

// Mock implementations shared by the service tests.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockUserRepo struct {
	mu        sync.Mutex
	users     map[string]*model.User
	createErr error
	getErr    error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByCredentials(ctx context.Context, username, password string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Username == username && user.Password == password {
			return user, nil
		}
	}
	return nil, nil
}

type mockWeddingRepo struct {
	mu       sync.Mutex
	weddings map[string]*model.Wedding
	getErr   error
}

func newMockWeddingRepo() *mockWeddingRepo {
	return &mockWeddingRepo{weddings: make(map[string]*model.Wedding)}
}

func (m *mockWeddingRepo) Create(ctx context.Context, wedding *model.Wedding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *wedding
	m.weddings[wedding.ID] = &copied
	return nil
}

func (m *mockWeddingRepo) GetByID(ctx context.Context, id string) (*model.Wedding, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if wedding, ok := m.weddings[id]; ok {
		copied := *wedding
		return &copied, nil
	}
	return nil, nil
}

func (m *mockWeddingRepo) GetByUserID(ctx context.Context, userID string) (*model.Wedding, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, wedding := range m.weddings {
		if wedding.UserID == userID {
			copied := *wedding
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockWeddingRepo) GetByShareableID(ctx context.Context, shareableID string) (*model.Wedding, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, wedding := range m.weddings {
		if wedding.ShareableID == shareableID {
			copied := *wedding
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockWeddingRepo) Update(ctx context.Context, wedding *model.Wedding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *wedding
	m.weddings[wedding.ID] = &copied
	return nil
}

type mockSessionRepo struct {
	mu        sync.Mutex
	sessions  map[string]*model.Session
	createErr error
	getErr    error
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*model.Session)}
}

func (m *mockSessionRepo) Create(ctx context.Context, session *model.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *session
	m.sessions[session.SessionID] = &copied
	return nil
}

func (m *mockSessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.Session, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[sessionID], nil
}

type mockBackup struct {
	mu       sync.Mutex
	users    map[string]*model.User
	weddings map[string]*model.Wedding
	saveErr  error
}

func newMockBackup() *mockBackup {
	return &mockBackup{
		users:    make(map[string]*model.User),
		weddings: make(map[string]*model.Wedding),
	}
}

func (m *mockBackup) SaveUser(user *model.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *mockBackup) SaveWedding(wedding *model.Wedding) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *wedding
	m.weddings[wedding.ID] = &copied
	return nil
}

func (m *mockBackup) WeddingByID(id string) (*model.Wedding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if wedding, ok := m.weddings[id]; ok {
		return wedding, nil
	}
	return nil, nil
}

func (m *mockBackup) WeddingByShareableID(shareableID string) (*model.Wedding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, wedding := range m.weddings {
		if wedding.ShareableID == shareableID {
			return wedding, nil
		}
	}
	return nil, nil
}

type mockRSVPRepo struct {
	mu    sync.Mutex
	rsvps []model.RSVP
}

func newMockRSVPRepo() *mockRSVPRepo {
	return &mockRSVPRepo{}
}

func (m *mockRSVPRepo) Create(ctx context.Context, rsvp *model.RSVP) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rsvps = append(m.rsvps, *rsvp)
	return nil
}

func (m *mockRSVPRepo) ListByWeddingID(ctx context.Context, weddingID string) ([]model.RSVP, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.RSVP
	for _, rsvp := range m.rsvps {
		if rsvp.WeddingID == weddingID {
			result = append(result, rsvp)
		}
	}
	return result, nil
}

type mockGuestbookRepo struct {
	mu       sync.Mutex
	messages []model.GuestbookMessage
}

func newMockGuestbookRepo() *mockGuestbookRepo {
	return &mockGuestbookRepo{}
}

func (m *mockGuestbookRepo) Create(ctx context.Context, message *model.GuestbookMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, *message)
	return nil
}

func (m *mockGuestbookRepo) ListPublic(ctx context.Context) ([]model.GuestbookMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.GuestbookMessage
	for _, message := range m.messages {
		if message.IsPublic {
			result = append(result, message)
		}
	}
	return result, nil
}

func (m *mockGuestbookRepo) ListByWeddingID(ctx context.Context, weddingID string) ([]model.GuestbookMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.GuestbookMessage
	for _, message := range m.messages {
		if message.WeddingID == weddingID {
			result = append(result, message)
		}
	}
	return result, nil
}

type mockContributionRepo struct {
	mu            sync.Mutex
	contributions map[string]*model.Contribution
}

func newMockContributionRepo() *mockContributionRepo {
	return &mockContributionRepo{contributions: make(map[string]*model.Contribution)}
}

func (m *mockContributionRepo) Create(ctx context.Context, contribution *model.Contribution) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *contribution
	m.contributions[contribution.ID] = &copied
	return nil
}

func (m *mockContributionRepo) UpdateStatusByIntentID(ctx context.Context, intentID string, status model.PaymentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, contribution := range m.contributions {
		if contribution.PaymentIntentID == intentID {
			contribution.PaymentStatus = status
			return nil
		}
	}
	return database.ErrNotFound
}

func (m *mockContributionRepo) ListCompletedByWeddingID(ctx context.Context, weddingID string) ([]model.Contribution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.Contribution
	for _, contribution := range m.contributions {
		if contribution.WeddingID == weddingID && contribution.PaymentStatus == model.PaymentStatusCompleted {
			result = append(result, *contribution)
		}
	}
	return result, nil
}
