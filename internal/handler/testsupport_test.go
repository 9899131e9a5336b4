package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"github.com/weddingcard/api/internal/backup"
	"github.com/weddingcard/api/internal/database"
	"github.com/weddingcard/api/internal/model"
	"github.com/weddingcard/api/internal/payment"
	"github.com/weddingcard/api/internal/service"
)

// In-memory repositories backing the handler tests. They satisfy the
// service-side interfaces so the full handler/service pipeline runs
// without a database.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: make(map[string]*model.User)} }

func (m *memUserRepo) Create(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (m *memUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetByCredentials(ctx context.Context, username, password string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Username == username && user.Password == password {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type memWeddingRepo struct {
	mu       sync.Mutex
	weddings map[string]*model.Wedding
}

func newMemWeddingRepo() *memWeddingRepo {
	return &memWeddingRepo{weddings: make(map[string]*model.Wedding)}
}

func (m *memWeddingRepo) Create(ctx context.Context, wedding *model.Wedding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *wedding
	m.weddings[wedding.ID] = &copied
	return nil
}

func (m *memWeddingRepo) GetByID(ctx context.Context, id string) (*model.Wedding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if wedding, ok := m.weddings[id]; ok {
		copied := *wedding
		return &copied, nil
	}
	return nil, nil
}

func (m *memWeddingRepo) GetByUserID(ctx context.Context, userID string) (*model.Wedding, error) {
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

func (m *memWeddingRepo) GetByShareableID(ctx context.Context, shareableID string) (*model.Wedding, error) {
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

func (m *memWeddingRepo) Update(ctx context.Context, wedding *model.Wedding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *wedding
	m.weddings[wedding.ID] = &copied
	return nil
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*model.Session)}
}

func (m *memSessionRepo) Create(ctx context.Context, session *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *session
	m.sessions[session.SessionID] = &copied
	return nil
}

func (m *memSessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[sessionID]; ok {
		copied := *session
		return &copied, nil
	}
	return nil, nil
}

type memRSVPRepo struct {
	mu    sync.Mutex
	rsvps []model.RSVP
}

func newMemRSVPRepo() *memRSVPRepo { return &memRSVPRepo{} }

func (m *memRSVPRepo) Create(ctx context.Context, rsvp *model.RSVP) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rsvps = append(m.rsvps, *rsvp)
	return nil
}

func (m *memRSVPRepo) ListByWeddingID(ctx context.Context, weddingID string) ([]model.RSVP, error) {
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

type memGuestbookRepo struct {
	mu       sync.Mutex
	messages []model.GuestbookMessage
}

func newMemGuestbookRepo() *memGuestbookRepo { return &memGuestbookRepo{} }

func (m *memGuestbookRepo) Create(ctx context.Context, message *model.GuestbookMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, *message)
	return nil
}

func (m *memGuestbookRepo) ListPublic(ctx context.Context) ([]model.GuestbookMessage, error) {
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

func (m *memGuestbookRepo) ListByWeddingID(ctx context.Context, weddingID string) ([]model.GuestbookMessage, error) {
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

type memContributionRepo struct {
	mu            sync.Mutex
	contributions map[string]*model.Contribution
}

func newMemContributionRepo() *memContributionRepo {
	return &memContributionRepo{contributions: make(map[string]*model.Contribution)}
}

func (m *memContributionRepo) Create(ctx context.Context, contribution *model.Contribution) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *contribution
	m.contributions[contribution.ID] = &copied
	return nil
}

func (m *memContributionRepo) UpdateStatusByIntentID(ctx context.Context, intentID string, status model.PaymentStatus) error {
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

func (m *memContributionRepo) ListCompletedByWeddingID(ctx context.Context, weddingID string) ([]model.Contribution, error) {
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

// stubProvider is a canned payment gateway. Every created intent starts
// unsettled; tests flip it with settle.
type stubProvider struct {
	mu      sync.Mutex
	intents map[string]*payment.Intent
	nextID  int
}

func newStubProvider() *stubProvider { return &stubProvider{intents: make(map[string]*payment.Intent)} }

func (p *stubProvider) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*payment.Intent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	intent := &payment.Intent{
		ID:           fmt.Sprintf("pi_test_%d", p.nextID),
		ClientSecret: fmt.Sprintf("pi_test_%d_secret", p.nextID),
		Status:       "requires_payment_method",
	}
	p.intents[intent.ID] = intent
	return intent, nil
}

func (p *stubProvider) GetIntent(ctx context.Context, id string) (*payment.Intent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	intent, ok := p.intents[id]
	if !ok {
		return nil, errors.New("no such payment_intent")
	}
	copied := *intent
	return &copied, nil
}

func (p *stubProvider) settle(id, status string, amountMinor int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if intent, ok := p.intents[id]; ok {
		intent.Status = status
		intent.AmountReceived = amountMinor
	}
}

// testAPI wires the full handler/service stack over in-memory storage
// and the route table the server uses.
type testAPI struct {
	mux      *http.ServeMux
	provider *stubProvider
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := backup.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("backup store: %v", err)
	}

	userRepo := newMemUserRepo()
	weddingRepo := newMemWeddingRepo()
	provider := newStubProvider()

	sessions := service.NewSessionService(service.NewMemoryCache(), newMemSessionRepo(), logger)
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:    userRepo,
		WeddingRepo: weddingRepo,
		Sessions:    sessions,
		Backup:      store,
		Logger:      logger,
	})
	weddingService := service.NewWeddingService(service.WeddingServiceConfig{
		WeddingRepo: weddingRepo,
		UserRepo:    userRepo,
		Sessions:    sessions,
		Backup:      store,
		BackupRead:  store,
		Logger:      logger,
	})
	rsvpService := service.NewRSVPService(newMemRSVPRepo(), weddingRepo)
	guestbookService := service.NewGuestbookService(newMemGuestbookRepo(), weddingRepo, sessions)
	paymentService := service.NewPaymentService(service.PaymentServiceConfig{
		ContributionRepo: newMemContributionRepo(),
		WeddingRepo:      weddingRepo,
		Sessions:         sessions,
		Provider:         provider,
		Logger:           logger,
	})

	authHandler := NewAuthHandler(authService)
	weddingHandler := NewWeddingHandler(weddingService)
	registryHandler := NewRegistryHandler(weddingService)
	rsvpHandler := NewRSVPHandler(rsvpService)
	guestbookHandler := NewGuestbookHandler(guestbookService)
	paymentHandler := NewPaymentHandler(paymentService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/profile", authHandler.Profile)
	mux.HandleFunc("POST /api/wedding", weddingHandler.Create)
	mux.HandleFunc("PUT /api/wedding", weddingHandler.Update)
	mux.HandleFunc("GET /api/wedding", weddingHandler.GetOwn)
	mux.HandleFunc("GET /api/wedding/public/{wedding_id}", weddingHandler.PublicByID)
	mux.HandleFunc("GET /api/wedding/share/{shareable_id}", weddingHandler.ByShareableID)
	mux.HandleFunc("GET /api/wedding/user/{username}", weddingHandler.ByUsername)
	mux.HandleFunc("GET /api/wedding/user/{username}/{section}", weddingHandler.SectionByUsername)
	mux.HandleFunc("PUT /api/wedding/party", weddingHandler.UpdateParty)
	mux.HandleFunc("PUT /api/wedding/faq", weddingHandler.UpdateFAQ)
	mux.HandleFunc("PUT /api/wedding/theme", weddingHandler.UpdateTheme)
	mux.HandleFunc("PUT /api/wedding/registry", registryHandler.Update)
	mux.HandleFunc("GET /api/wedding/registry/{wedding_id}", registryHandler.ByWeddingID)
	mux.HandleFunc("GET /api/wedding/registry/share/{shareable_id}", registryHandler.ByShareableID)
	mux.HandleFunc("POST /api/rsvp", rsvpHandler.Submit)
	mux.HandleFunc("GET /api/rsvp/{wedding_id}", rsvpHandler.ListByWeddingID)
	mux.HandleFunc("GET /api/rsvp/shareable/{shareable_id}", rsvpHandler.ListByShareableID)
	mux.HandleFunc("POST /api/guestbook", guestbookHandler.Post)
	mux.HandleFunc("POST /api/guestbook/private", guestbookHandler.PostPrivate)
	mux.HandleFunc("GET /api/guestbook/{wedding_id}", guestbookHandler.ListByWeddingID)
	mux.HandleFunc("GET /api/guestbook/public/messages", guestbookHandler.ListPublic)
	mux.HandleFunc("GET /api/guestbook/private/{wedding_id}", guestbookHandler.ListPrivate)
	mux.HandleFunc("GET /api/guestbook/shareable/{shareable_id}", guestbookHandler.ListByShareableID)
	mux.HandleFunc("POST /api/payment/create-intent", paymentHandler.CreateIntent)
	mux.HandleFunc("POST /api/payment/confirm", paymentHandler.Confirm)
	mux.HandleFunc("POST /api/payment/upi-contribution", paymentHandler.RecordUPI)
	mux.HandleFunc("GET /api/payment/contributions/{wedding_id}", paymentHandler.ListContributions)
	mux.HandleFunc("GET /api/payment/total/{wedding_id}", paymentHandler.Total)
	mux.HandleFunc("GET /api/test", Test)

	return &testAPI{mux: mux, provider: provider}
}
