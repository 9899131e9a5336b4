package handler

import (
	"net/http"

	"github.com/weddingcard/api/internal/model"
	"github.com/weddingcard/api/internal/service"
)

// PaymentHandler handles honeymoon fund payment endpoints
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// IntentResponse is returned when a card payment is opened
type IntentResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
	ContributionID  string `json:"contribution_id"`
}

// ConfirmRequest represents the payment confirmation body
type ConfirmRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
}

// ConfirmResponse reports the provider-side outcome
type ConfirmResponse struct {
	Success        bool    `json:"success"`
	PaymentStatus  string  `json:"payment_status"`
	AmountReceived float64 `json:"amount_received"`
}

// UPIResponse confirms a recorded UPI contribution
type UPIResponse struct {
	Success        bool   `json:"success"`
	ContributionID string `json:"contribution_id"`
	Message        string `json:"message"`
}

// ContributionsResponse is the owner-only contribution listing
type ContributionsResponse struct {
	Contributions []model.Contribution `json:"contributions"`
	TotalAmount   float64              `json:"total_amount"`
	Currency      string               `json:"currency"`
	Count         int                  `json:"count"`
}

// TotalResponse is the public contribution summary
type TotalResponse struct {
	TotalAmount float64 `json:"total_amount"`
	Currency    string  `json:"currency"`
	Count       int     `json:"count"`
}

// CreateIntent handles POST /api/payment/create-intent
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req service.ContributionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	result, err := h.paymentService.CreateIntent(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, IntentResponse{
		ClientSecret:    result.ClientSecret,
		PaymentIntentID: result.PaymentIntentID,
		ContributionID:  result.ContributionID,
	})
}

// Confirm handles POST /api/payment/confirm
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}
	if req.PaymentIntentID == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "payment_intent_id", Message: "payment_intent_id is required"},
		}))
		return
	}

	result, err := h.paymentService.Confirm(r.Context(), req.PaymentIntentID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, ConfirmResponse{
		Success:        true,
		PaymentStatus:  result.PaymentStatus,
		AmountReceived: result.AmountReceived,
	})
}

// RecordUPI handles POST /api/payment/upi-contribution
func (h *PaymentHandler) RecordUPI(w http.ResponseWriter, r *http.Request) {
	var req service.ContributionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	contribution, err := h.paymentService.RecordUPI(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, UPIResponse{
		Success:        true,
		ContributionID: contribution.ID,
		Message:        "UPI contribution recorded successfully",
	})
}

// ListContributions handles GET /api/payment/contributions/{wedding_id}
func (h *PaymentHandler) ListContributions(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		WriteError(w, model.NewUnauthorizedError("Session ID required"))
		return
	}

	totals, err := h.paymentService.ListContributions(r.Context(), sessionID, r.PathValue("wedding_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	contributions := totals.Contributions
	if contributions == nil {
		contributions = []model.Contribution{}
	}
	WriteJSON(w, http.StatusOK, ContributionsResponse{
		Contributions: contributions,
		TotalAmount:   totals.TotalAmount,
		Currency:      totals.Currency,
		Count:         totals.Count,
	})
}

// Total handles GET /api/payment/total/{wedding_id}
func (h *PaymentHandler) Total(w http.ResponseWriter, r *http.Request) {
	totals, err := h.paymentService.Total(r.Context(), r.PathValue("wedding_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, TotalResponse{
		TotalAmount: totals.TotalAmount,
		Currency:    totals.Currency,
		Count:       totals.Count,
	})
}
