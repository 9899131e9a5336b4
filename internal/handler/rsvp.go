package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/weddingcard/api/internal/model"
	"github.com/weddingcard/api/internal/service"
)

// RSVPHandler handles RSVP endpoints
type RSVPHandler struct {
	rsvpService *service.RSVPService
}

// NewRSVPHandler creates a new RSVP handler
func NewRSVPHandler(rsvpService *service.RSVPService) *RSVPHandler {
	return &RSVPHandler{rsvpService: rsvpService}
}

// FlexCount decodes a guest count sent as either a JSON number or a
// numeric string; some clients submit the form value unconverted.
type FlexCount int

func (c *FlexCount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*c = FlexCount(n)
	return nil
}

// RSVPRequest represents an RSVP submission
type RSVPRequest struct {
	WeddingID           string    `json:"wedding_id"`
	GuestName           string    `json:"guest_name"`
	GuestEmail          string    `json:"guest_email"`
	GuestPhone          string    `json:"guest_phone"`
	Attendance          string    `json:"attendance"`
	GuestCount          FlexCount `json:"guest_count"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	SpecialMessage      string    `json:"special_message"`
}

// RSVPSubmitResponse confirms an accepted RSVP
type RSVPSubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	RSVPID  string `json:"rsvp_id"`
}

// RSVPListResponse wraps the responses for one wedding
type RSVPListResponse struct {
	Success    bool         `json:"success"`
	RSVPs      []model.RSVP `json:"rsvps"`
	TotalCount int          `json:"total_count"`
}

// Submit handles POST /api/rsvp
func (h *RSVPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req RSVPRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	rsvp, err := h.rsvpService.Submit(r.Context(), &model.RSVP{
		WeddingID:           req.WeddingID,
		GuestName:           req.GuestName,
		GuestEmail:          req.GuestEmail,
		GuestPhone:          req.GuestPhone,
		Attendance:          req.Attendance,
		GuestCount:          int(req.GuestCount),
		DietaryRestrictions: req.DietaryRestrictions,
		SpecialMessage:      req.SpecialMessage,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, RSVPSubmitResponse{
		Success: true,
		Message: "RSVP submitted successfully",
		RSVPID:  rsvp.ID,
	})
}

// ListByWeddingID handles GET /api/rsvp/{wedding_id}
func (h *RSVPHandler) ListByWeddingID(w http.ResponseWriter, r *http.Request) {
	rsvps, err := h.rsvpService.ListByWeddingID(r.Context(), r.PathValue("wedding_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	writeRSVPList(w, rsvps)
}

// ListByShareableID handles GET /api/rsvp/shareable/{shareable_id}
func (h *RSVPHandler) ListByShareableID(w http.ResponseWriter, r *http.Request) {
	rsvps, err := h.rsvpService.ListByShareableID(r.Context(), r.PathValue("shareable_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	writeRSVPList(w, rsvps)
}

func writeRSVPList(w http.ResponseWriter, rsvps []model.RSVP) {
	if rsvps == nil {
		rsvps = []model.RSVP{}
	}
	WriteJSON(w, http.StatusOK, RSVPListResponse{
		Success:    true,
		RSVPs:      rsvps,
		TotalCount: len(rsvps),
	})
}
