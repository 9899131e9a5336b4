package handler

import (
	"net/http"

	"github.com/weddingcard/api/internal/model"
	"github.com/weddingcard/api/internal/service"
)

// RegistryHandler handles honeymoon fund configuration endpoints
type RegistryHandler struct {
	weddingService *service.WeddingService
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(weddingService *service.WeddingService) *RegistryHandler {
	return &RegistryHandler{weddingService: weddingService}
}

// RegistryResponse wraps a honeymoon fund configuration
type RegistryResponse struct {
	HoneymoonFund model.HoneymoonFund `json:"honeymoon_fund"`
}

// RegistryUpdateResponse confirms a configuration change
type RegistryUpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Update handles PUT /api/wedding/registry. Unlike the other owner
// endpoints, the session id arrives as a query parameter and its
// absence is a 401.
func (h *RegistryHandler) Update(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		WriteError(w, model.NewUnauthorizedError("Session ID required"))
		return
	}

	var fund model.HoneymoonFund
	if err := DecodeJSON(r, &fund); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	if err := h.weddingService.UpdateRegistry(r.Context(), sessionID, fund); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, RegistryUpdateResponse{
		Success: true,
		Message: "Honeymoon fund configuration updated successfully",
	})
}

// ByWeddingID handles GET /api/wedding/registry/{wedding_id}
func (h *RegistryHandler) ByWeddingID(w http.ResponseWriter, r *http.Request) {
	fund, err := h.weddingService.RegistryByWeddingID(r.Context(), r.PathValue("wedding_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, RegistryResponse{HoneymoonFund: fund})
}

// ByShareableID handles GET /api/wedding/registry/share/{shareable_id}
func (h *RegistryHandler) ByShareableID(w http.ResponseWriter, r *http.Request) {
	fund, err := h.weddingService.RegistryByShareableID(r.Context(), r.PathValue("shareable_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, RegistryResponse{HoneymoonFund: fund})
}
