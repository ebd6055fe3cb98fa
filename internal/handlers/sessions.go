package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lehigh-university-libraries/swatchbook/internal/carousel"
	"github.com/lehigh-university-libraries/swatchbook/internal/models"
	"github.com/lehigh-university-libraries/swatchbook/internal/storage"
)

func (h *Handler) HandleSessions(w http.ResponseWriter, r *http.Request) {
	sessions := h.sessionStore.GetAll()
	sessionList := make([]models.SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		sessionList = append(sessionList, session.Summary())
	}
	h.writeJSON(w, sessionList)
}

func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Set string `json:"set"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if request.Set == "" {
		h.writeError(w, "set is required", http.StatusBadRequest)
		return
	}

	images, err := h.catalog.Images(r.Context(), request.Set)
	if err != nil {
		h.writeError(w, setNotFoundMessage, http.StatusNotFound)
		return
	}

	session := h.sessionStore.Create(request.Set, images)
	slog.Info("Session created", "session_id", session.ID, "set", request.Set, "images", len(images))
	h.writeJSONStatus(w, http.StatusCreated, session.View())
}

func (h *Handler) HandleSessionDetail(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, session.View())
}

func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if err := h.sessionStore.Delete(sessionID); err != nil {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return
	}
	slog.Info("Session deleted", "session_id", sessionID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleNavigate accepts {"index": n} or {"direction": "next"|"prev"}.
// Requests the engine ignores still answer with the current view.
func (h *Handler) HandleNavigate(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	var request struct {
		Index     *int   `json:"index"`
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	var navigate func(e *carousel.Engine) bool
	switch {
	case request.Index != nil:
		idx := *request.Index
		navigate = func(e *carousel.Engine) bool { return e.NavigateTo(idx) }
	case request.Direction == "next":
		navigate = (*carousel.Engine).Next
	case request.Direction == "prev":
		navigate = (*carousel.Engine).Prev
	default:
		h.writeError(w, "index or direction (next, prev) is required", http.StatusBadRequest)
		return
	}

	moved := session.Navigate(navigate)
	slog.Debug("Session navigated", "session_id", session.ID, "moved", moved)

	h.writeJSON(w, session.View())
}

// HandlePreviewFailed is called by clients whose room image failed to load.
// The session keeps showing the swatch for this selection.
func (h *Handler) HandlePreviewFailed(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}
	slog.Debug("Preview failed", "session_id", session.ID)
	h.writeJSON(w, session.PreviewFailed())
}

func (h *Handler) getSessionOrError(w http.ResponseWriter, r *http.Request) (*storage.Session, bool) {
	session, err := h.sessionStore.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		if !errors.Is(err, storage.ErrSessionNotFound) {
			slog.Error("Unable to load session", "err", err)
		}
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}
