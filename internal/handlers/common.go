package handlers

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/lehigh-university-libraries/swatchbook/internal/catalog"
	"github.com/lehigh-university-libraries/swatchbook/internal/storage"
)

type Handler struct {
	catalog      *catalog.Catalog
	sessionStore *storage.SessionStore
	imagesFS     fs.FS
	publicFS     fs.FS
}

// New builds a handler serving images from imagesFS and the web client
// from publicFS.
func New(imagesFS, publicFS fs.FS) *Handler {
	return &Handler{
		catalog:      catalog.New(storage.NewLibrary(imagesFS)),
		sessionStore: storage.New(),
		imagesFS:     imagesFS,
		publicFS:     publicFS,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	h.writeJSONStatus(w, http.StatusOK, data)
}

func (h *Handler) writeJSONStatus(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	if code >= http.StatusInternalServerError {
		slog.Error(message)
	} else {
		slog.Debug(message, "status", code)
	}
	h.writeJSONStatus(w, code, errorResponse{Error: message})
}

// pathParam returns a route parameter decoded exactly once. chi routes on
// RawPath when the request carries one, leaving the segment escaped;
// otherwise it routes on the already decoded Path.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
