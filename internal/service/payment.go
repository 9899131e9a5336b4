package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/weddingcard/api/internal/database"
	"github.com/weddingcard/api/internal/model"
	"github.com/weddingcard/api/internal/payment"
)

// ContributionRepository defines the interface for contribution storage
type ContributionRepository interface {
	Create(ctx context.Context, contribution *model.Contribution) error
	UpdateStatusByIntentID(ctx context.Context, intentID string, status model.PaymentStatus) error
	ListCompletedByWeddingID(ctx context.Context, weddingID string) ([]model.Contribution, error)
}

// ContributionRequest carries the contributor-supplied fields for a
// card or UPI contribution.
type ContributionRequest struct {
	WeddingID        string  `json:"wedding_id"`
	ContributorName  string  `json:"contributor_name"`
	ContributorEmail string  `json:"contributor_email"`
	ContributorPhone string  `json:"contributor_phone"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	Message          string  `json:"message"`
	UPIReference     string  `json:"upi_reference"`
}

// IntentResult is returned after a payment intent is created.
type IntentResult struct {
	ClientSecret    string
	PaymentIntentID string
	ContributionID  string
}

// ConfirmResult is returned after a payment intent is re-checked with
// the provider.
type ConfirmResult struct {
	PaymentStatus  string
	AmountReceived float64
}

// ContributionTotals summarizes the completed contributions of a
// wedding. Totals are recomputed from the records on every call.
type ContributionTotals struct {
	Contributions []model.Contribution
	TotalAmount   float64
	Currency      string
	Count         int
}

// PaymentService handles honeymoon fund contributions
type PaymentService struct {
	contributionRepo ContributionRepository
	weddingRepo      WeddingRepository
	sessions         *SessionService
	provider         payment.Provider
	logger           *slog.Logger
}

// PaymentServiceConfig holds configuration for the payment service
type PaymentServiceConfig struct {
	ContributionRepo ContributionRepository
	WeddingRepo      WeddingRepository
	Sessions         *SessionService
	Provider         payment.Provider
	Logger           *slog.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(cfg PaymentServiceConfig) *PaymentService {
	return &PaymentService{
		contributionRepo: cfg.ContributionRepo,
		weddingRepo:      cfg.WeddingRepo,
		sessions:         cfg.Sessions,
		provider:         cfg.Provider,
		logger:           cfg.Logger,
	}
}

// CreateIntent opens a card payment with the provider and records a
// pending contribution keyed by the intent id.
func (s *PaymentService) CreateIntent(ctx context.Context, req *ContributionRequest) (*IntentResult, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	wedding, err := s.weddingRepo.GetByID(ctx, req.WeddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	currency := req.Currency
	if currency == "" {
		currency = "inr"
	}

	intent, err := s.provider.CreateIntent(ctx, int64(req.Amount*100), currency, map[string]string{
		"wedding_id":        req.WeddingID,
		"contributor_name":  req.ContributorName,
		"contributor_email": req.ContributorEmail,
		"contributor_phone": req.ContributorPhone,
		"message":           req.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	contribution := &model.Contribution{
		ID:               uuid.NewString(),
		WeddingID:        req.WeddingID,
		ContributorName:  req.ContributorName,
		ContributorEmail: req.ContributorEmail,
		ContributorPhone: req.ContributorPhone,
		Amount:           req.Amount,
		Currency:         currency,
		PaymentIntentID:  intent.ID,
		PaymentStatus:    model.PaymentStatusPending,
		Message:          req.Message,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.contributionRepo.Create(ctx, contribution); err != nil {
		return nil, err
	}

	return &IntentResult{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		ContributionID:  contribution.ID,
	}, nil
}

// Confirm re-checks an intent with the provider and transitions the
// matching contribution to completed or failed. The provider is the
// authority; the stored status only mirrors it.
func (s *PaymentService) Confirm(ctx context.Context, paymentIntentID string) (*ConfirmResult, error) {
	intent, err := s.provider.GetIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	status := model.PaymentStatusFailed
	if intent.Status == payment.StatusSucceeded {
		status = model.PaymentStatusCompleted
	}

	if err := s.contributionRepo.UpdateStatusByIntentID(ctx, paymentIntentID, status); err != nil {
		if err == database.ErrNotFound {
			return nil, ErrContributionNotFound
		}
		return nil, err
	}

	return &ConfirmResult{
		PaymentStatus:  intent.Status,
		AmountReceived: float64(intent.AmountReceived) / 100,
	}, nil
}

// RecordUPI stores an out-of-band UPI contribution. There is no
// provider to verify against, so the record is completed immediately.
func (s *PaymentService) RecordUPI(ctx context.Context, req *ContributionRequest) (*model.Contribution, error) {
	wedding, err := s.weddingRepo.GetByID(ctx, req.WeddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	currency := req.Currency
	if currency == "" {
		currency = "inr"
	}

	contribution := &model.Contribution{
		ID:               uuid.NewString(),
		WeddingID:        req.WeddingID,
		ContributorName:  req.ContributorName,
		ContributorEmail: req.ContributorEmail,
		ContributorPhone: req.ContributorPhone,
		Amount:           req.Amount,
		Currency:         currency,
		PaymentIntentID:  req.UPIReference,
		PaymentStatus:    model.PaymentStatusCompleted,
		PaymentMethod:    "upi",
		UPIReference:     req.UPIReference,
		Message:          req.Message,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.contributionRepo.Create(ctx, contribution); err != nil {
		return nil, err
	}
	return contribution, nil
}

// ListContributions returns the completed contributions of a wedding
// for its owner. Anyone else gets ErrNotWeddingOwner, including when
// the wedding does not exist, so the response does not reveal which
// wedding ids are real.
func (s *PaymentService) ListContributions(ctx context.Context, sessionID, weddingID string) (*ContributionTotals, error) {
	userID, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	wedding, err := s.weddingRepo.GetByID(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil || wedding.UserID != userID {
		return nil, ErrNotWeddingOwner
	}

	return s.totals(ctx, weddingID)
}

// Total returns the public contribution summary of a wedding.
func (s *PaymentService) Total(ctx context.Context, weddingID string) (*ContributionTotals, error) {
	wedding, err := s.weddingRepo.GetByID(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}
	return s.totals(ctx, weddingID)
}

func (s *PaymentService) totals(ctx context.Context, weddingID string) (*ContributionTotals, error) {
	contributions, err := s.contributionRepo.ListCompletedByWeddingID(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, contribution := range contributions {
		total += contribution.Amount
	}
	currency := "inr"
	if len(contributions) > 0 {
		currency = contributions[0].Currency
	}

	return &ContributionTotals{
		Contributions: contributions,
		TotalAmount:   total,
		Currency:      currency,
		Count:         len(contributions),
	}, nil
}
