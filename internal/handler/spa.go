package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/weddingcard/api/internal/model"
)

// SPAHandler serves the built single-page frontend. Real files are
// served directly; every other path gets index.html so client-side
// routing works. Unknown /api paths stay JSON 404s and never fall
// through to the frontend.
type SPAHandler struct {
	buildDir string
	enabled  bool
}

// NewSPAHandler creates a handler rooted at the frontend build
// directory. Serving is disabled when the directory does not exist.
func NewSPAHandler(buildDir string) *SPAHandler {
	info, err := os.Stat(buildDir)
	return &SPAHandler{
		buildDir: buildDir,
		enabled:  err == nil && info.IsDir(),
	}
}

// Enabled reports whether a frontend build was found.
func (h *SPAHandler) Enabled() bool {
	return h.enabled
}

// ServeHTTP handles every route not claimed by the API.
func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")

	if strings.HasPrefix(path, "api") {
		WriteError(w, model.NewNotFoundError("API endpoint"))
		return
	}

	if !h.enabled {
		http.NotFound(w, r)
		return
	}

	if path != "" {
		candidate := filepath.Join(h.buildDir, filepath.Clean(path))
		if rel, err := filepath.Rel(h.buildDir, candidate); err == nil && !strings.HasPrefix(rel, "..") {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				http.ServeFile(w, r, candidate)
				return
			}
		}
	}

	http.ServeFile(w, r, filepath.Join(h.buildDir, "index.html"))
}
