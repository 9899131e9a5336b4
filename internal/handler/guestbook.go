package handler

import (
	"net/http"

	"github.com/weddingcard/api/internal/model"
	"github.com/weddingcard/api/internal/service"
)

// GuestbookHandler handles guestbook endpoints
type GuestbookHandler struct {
	guestbookService *service.GuestbookService
}

// NewGuestbookHandler creates a new guestbook handler
func NewGuestbookHandler(guestbookService *service.GuestbookService) *GuestbookHandler {
	return &GuestbookHandler{guestbookService: guestbookService}
}

// GuestbookRequest represents a guestbook submission
type GuestbookRequest struct {
	SessionID string `json:"session_id"`
	service.GuestbookEntry
}

// GuestbookSubmitResponse confirms an accepted message
type GuestbookSubmitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"message_id"`
}

// GuestbookListResponse wraps a list of messages
type GuestbookListResponse struct {
	Success    bool                     `json:"success"`
	Messages   []model.GuestbookMessage `json:"messages"`
	TotalCount int                      `json:"total_count"`
}

// Post handles POST /api/guestbook
func (h *GuestbookHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req GuestbookRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	message, err := h.guestbookService.Post(r.Context(), &req.GuestbookEntry)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, GuestbookSubmitResponse{
		Success:   true,
		Message:   "Guestbook message added successfully",
		MessageID: message.ID,
	})
}

// PostPrivate handles POST /api/guestbook/private
func (h *GuestbookHandler) PostPrivate(w http.ResponseWriter, r *http.Request) {
	var req GuestbookRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}
	if req.SessionID == "" {
		WriteError(w, model.NewBadRequestError("Session ID required for private guestbook"))
		return
	}

	message, err := h.guestbookService.PostPrivate(r.Context(), req.SessionID, &req.GuestbookEntry)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, GuestbookSubmitResponse{
		Success:   true,
		Message:   "Private guestbook message added successfully",
		MessageID: message.ID,
	})
}

// ListByWeddingID handles GET /api/guestbook/{wedding_id}
func (h *GuestbookHandler) ListByWeddingID(w http.ResponseWriter, r *http.Request) {
	messages, err := h.guestbookService.ListByWeddingID(r.Context(), r.PathValue("wedding_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	writeGuestbookList(w, messages)
}

// ListPublic handles GET /api/guestbook/public/messages
func (h *GuestbookHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	messages, err := h.guestbookService.ListPublic(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	writeGuestbookList(w, messages)
}

// ListPrivate handles GET /api/guestbook/private/{wedding_id}
func (h *GuestbookHandler) ListPrivate(w http.ResponseWriter, r *http.Request) {
	messages, err := h.guestbookService.ListPrivateByWeddingID(r.Context(), r.PathValue("wedding_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	writeGuestbookList(w, messages)
}

// ListByShareableID handles GET /api/guestbook/shareable/{shareable_id}
func (h *GuestbookHandler) ListByShareableID(w http.ResponseWriter, r *http.Request) {
	messages, err := h.guestbookService.ListByShareableID(r.Context(), r.PathValue("shareable_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	writeGuestbookList(w, messages)
}

func writeGuestbookList(w http.ResponseWriter, messages []model.GuestbookMessage) {
	if messages == nil {
		messages = []model.GuestbookMessage{}
	}
	WriteJSON(w, http.StatusOK, GuestbookListResponse{
		Success:    true,
		Messages:   messages,
		TotalCount: len(messages),
	})
}
