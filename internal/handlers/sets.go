package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lehigh-university-libraries/swatchbook/internal/catalog"
)

const setNotFoundMessage = "Set not found or no swatches"

func (h *Handler) HandleSets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.catalog.ListSets(r.Context()))
}

func (h *Handler) HandleSetImages(w http.ResponseWriter, r *http.Request) {
	setName := pathParam(r, "setName")

	images, err := h.catalog.Images(r.Context(), setName)
	if err != nil {
		if !errors.Is(err, catalog.ErrSetNotFound) {
			slog.Warn("Unable to load set", "set", setName, "err", err)
		}
		h.writeError(w, setNotFoundMessage, http.StatusNotFound)
		return
	}

	h.writeJSON(w, images)
}
