package handler

import (
	"net/http"

	"github.com/weddingcard/api/internal/model"
	"github.com/weddingcard/api/internal/service"
)

// WeddingHandler handles wedding document endpoints
type WeddingHandler struct {
	weddingService *service.WeddingService
}

// NewWeddingHandler creates a new wedding handler
func NewWeddingHandler(weddingService *service.WeddingService) *WeddingHandler {
	return &WeddingHandler{weddingService: weddingService}
}

// WeddingRequest represents a create or update request body. The
// session id travels alongside the document fields.
type WeddingRequest struct {
	SessionID string `json:"session_id"`
	model.WeddingUpdate
}

// PartyRequest represents the party update request body
type PartyRequest struct {
	SessionID string `json:"session_id"`
	service.PartyUpdate
}

// FAQRequest represents the FAQ update request body
type FAQRequest struct {
	SessionID string      `json:"session_id"`
	FAQs      []model.FAQ `json:"faqs"`
}

// ThemeRequest represents the theme update request body
type ThemeRequest struct {
	SessionID string `json:"session_id"`
	Theme     string `json:"theme"`
}

// WeddingDataResponse wraps a wedding document in a success envelope
type WeddingDataResponse struct {
	Success     bool           `json:"success"`
	WeddingData *model.Wedding `json:"wedding_data"`
}

// Create handles POST /api/wedding
func (h *WeddingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req WeddingRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}
	if req.SessionID == "" {
		WriteError(w, model.NewBadRequestError("Session ID required"))
		return
	}

	wedding, err := h.weddingService.Create(r.Context(), req.SessionID, &req.WeddingUpdate)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, wedding)
}

// Update handles PUT /api/wedding
func (h *WeddingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req WeddingRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}
	if req.SessionID == "" {
		WriteError(w, model.NewBadRequestError("Session ID required"))
		return
	}

	wedding, err := h.weddingService.Update(r.Context(), req.SessionID, &req.WeddingUpdate)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, wedding)
}

// GetOwn handles GET /api/wedding
func (h *WeddingHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	wedding, err := h.weddingService.GetOwn(r.Context(), r.URL.Query().Get("session_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, wedding)
}

// PublicByID handles GET /api/wedding/public/{wedding_id}
func (h *WeddingHandler) PublicByID(w http.ResponseWriter, r *http.Request) {
	wedding, err := h.weddingService.PublicByID(r.Context(), r.PathValue("wedding_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, wedding)
}

// ByShareableID handles GET /api/wedding/share/{shareable_id}
func (h *WeddingHandler) ByShareableID(w http.ResponseWriter, r *http.Request) {
	wedding, err := h.weddingService.PublicByShareableID(r.Context(), r.PathValue("shareable_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, wedding)
}

// ByUsername handles GET /api/wedding/user/{username}
func (h *WeddingHandler) ByUsername(w http.ResponseWriter, r *http.Request) {
	wedding, err := h.weddingService.PublicByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, wedding)
}

// SectionByUsername handles GET /api/wedding/user/{username}/{section}
func (h *WeddingHandler) SectionByUsername(w http.ResponseWriter, r *http.Request) {
	wedding, err := h.weddingService.SectionByUsername(r.Context(), r.PathValue("username"), r.PathValue("section"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, wedding)
}

// UpdateParty handles PUT /api/wedding/party
func (h *WeddingHandler) UpdateParty(w http.ResponseWriter, r *http.Request) {
	var req PartyRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}
	if req.SessionID == "" {
		WriteError(w, model.NewBadRequestError("Session ID required"))
		return
	}

	wedding, err := h.weddingService.UpdateParty(r.Context(), req.SessionID, &req.PartyUpdate)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, WeddingDataResponse{Success: true, WeddingData: wedding})
}

// UpdateFAQ handles PUT /api/wedding/faq
func (h *WeddingHandler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	var req FAQRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}
	if req.SessionID == "" {
		WriteError(w, model.NewBadRequestError("Session ID required"))
		return
	}

	wedding, err := h.weddingService.UpdateFAQs(r.Context(), req.SessionID, req.FAQs)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, WeddingDataResponse{Success: true, WeddingData: wedding})
}

// UpdateTheme handles PUT /api/wedding/theme
func (h *WeddingHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}
	if req.SessionID == "" {
		WriteError(w, model.NewBadRequestError("Session ID required"))
		return
	}

	wedding, err := h.weddingService.UpdateTheme(r.Context(), req.SessionID, req.Theme)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, WeddingDataResponse{Success: true, WeddingData: wedding})
}
