package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"tracklit/internal/models"
	"tracklit/internal/utils"
	"tracklit/internal/validation"
)

// MoodListResponse wraps a list of mood entries.
type MoodListResponse struct {
	Entries []models.MoodEntry `json:"entries"`
	Count   int                `json:"count"`
}

// ListMoods handles GET /api/v1/moods.
func (h *Handlers) ListMoods(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.dayRange(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid_range", err.Error())
		return
	}

	entries, err := h.store.GetMoodEntries(start, end)
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to list mood entries")
		return
	}

	h.writeJSON(w, http.StatusOK, MoodListResponse{Entries: entries, Count: len(entries)})
}

// GetMood handles GET /api/v1/moods/{day}.
func (h *Handlers) GetMood(w http.ResponseWriter, r *http.Request) {
	day := mux.Vars(r)["day"]
	if !utils.ValidateDateFormat(day) {
		h.writeError(w, r, http.StatusBadRequest, "invalid_day", "day must be YYYY-MM-DD")
		return
	}

	e, err := h.store.GetMoodEntry(day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.writeError(w, r, http.StatusNotFound, "mood_not_found", "no mood logged for that day")
			return
		}
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to load mood entry")
		return
	}

	h.writeJSON(w, http.StatusOK, e)
}

// PutMood handles PUT /api/v1/moods/{day}. Writes upsert: logging a mood
// twice for one day replaces the earlier entry.
func (h *Handlers) PutMood(w http.ResponseWriter, r *http.Request) {
	day := mux.Vars(r)["day"]

	var e models.MoodEntry
	if err := decodeBody(r, &e); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	e.Day = day

	if err := validation.MoodEntry(e); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	now := h.now()
	e.ID = uuid.New().String()
	e.CreatedAt = now
	e.UpdatedAt = now
	e.DeletedAt = nil

	if err := h.store.SaveMoodEntry(e); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to save mood entry")
		return
	}

	saved, err := h.store.GetMoodEntry(day)
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to load saved mood entry")
		return
	}
	h.writeJSON(w, http.StatusOK, saved)
}

// DeleteMood handles DELETE /api/v1/moods/{day}.
func (h *Handlers) DeleteMood(w http.ResponseWriter, r *http.Request) {
	day := mux.Vars(r)["day"]

	if err := h.store.DeleteMoodEntry(day); err != nil {
		h.writeError(w, r, http.StatusNotFound, "mood_not_found", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
