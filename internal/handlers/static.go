package handlers

import (
	"bytes"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"
)

const indexPage = "index.html"

// HandleImages serves the raw image tree under /images/
func (h *Handler) HandleImages() http.Handler {
	return http.StripPrefix("/images", http.FileServerFS(h.imagesFS))
}

// HandleStatic serves files from the public directory and falls back to the
// entry document for every other path outside /api/ and /images/.
func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/images/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = indexPage
	}

	if info, err := fs.Stat(h.publicFS, name); err != nil || info.IsDir() {
		name = indexPage
	}

	h.serveFile(w, r, name)
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	data, err := fs.ReadFile(h.publicFS, name)
	if err != nil {
		slog.Error("Unable to read static file", "file", name, "err", err)
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
}
