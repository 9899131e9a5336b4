package handler

import (
	"net/http"
	"time"
)

// TestResponse is the connectivity check payload
type TestResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Test handles GET /api/test, a connectivity check used by the frontend
// during development.
func Test(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, TestResponse{
		Status:    "ok",
		Message:   "Backend is working",
		Timestamp: time.Now().UTC(),
	})
}
