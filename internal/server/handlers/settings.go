package handlers

import (
	"net/http"

	"tracklit/internal/models"
	"tracklit/internal/validation"
)

// GetSettings handles GET /api/v1/settings.
func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetSettings()
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to load settings")
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}

// PutSettings handles PUT /api/v1/settings.
func (h *Handlers) PutSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := decodeBody(r, &settings); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	if err := validation.Settings(settings); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	if err := h.store.SaveSettings(settings); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to save settings")
		return
	}

	h.writeJSON(w, http.StatusOK, settings)
}
