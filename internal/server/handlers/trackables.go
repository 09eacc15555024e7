package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"tracklit/internal/logger"
	"tracklit/internal/models"
	"tracklit/internal/tracker"
	"tracklit/internal/utils"
	"tracklit/internal/validation"
)

// TrackableListResponse wraps a list of trackables.
type TrackableListResponse struct {
	Trackables []models.Trackable `json:"trackables"`
	Count      int                `json:"count"`
}

// location resolves the viewer's calendar timezone from settings. A missing
// or invalid setting degrades to the process-local zone rather than failing
// the request.
func (h *Handlers) location() *time.Location {
	settings, err := h.store.GetSettings()
	if err != nil {
		logger.Warn("Failed to load settings, using local timezone", "error", err)
		return time.Local
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		logger.Warn("Invalid configured timezone, using local", "timezone", settings.Timezone, "error", err)
		return time.Local
	}
	return loc
}

// ListTrackables handles GET /api/v1/trackables. With start and end query
// parameters it serves the calendar view: the stored candidates are fetched
// first and the range predicate is applied as a post-processing pass. Every
// response is annotated with is_completed_today.
func (h *Handlers) ListTrackables(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	typeFilter := models.TrackableType(q.Get("type"))
	if typeFilter != "" && !typeFilter.Valid() {
		h.writeError(w, r, http.StatusBadRequest, "invalid_type", "unknown trackable type")
		return
	}

	trackables, err := h.store.GetAllTrackables(typeFilter, false)
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to list trackables")
		return
	}

	loc := h.location()

	startStr, endStr := q.Get("start"), q.Get("end")
	if (startStr == "") != (endStr == "") {
		h.writeError(w, r, http.StatusBadRequest, "invalid_range", "start and end must be supplied together")
		return
	}
	if startStr != "" {
		start, err := utils.ParseDateInLocation(startStr, loc)
		if err != nil {
			h.writeError(w, r, http.StatusBadRequest, "invalid_range", "start must be YYYY-MM-DD")
			return
		}
		end, err := utils.ParseDateInLocation(endStr, loc)
		if err != nil {
			h.writeError(w, r, http.StatusBadRequest, "invalid_range", "end must be YYYY-MM-DD")
			return
		}
		if end.Before(start) {
			h.writeError(w, r, http.StatusBadRequest, "invalid_range", "end precedes start")
			return
		}
		rangeStart, rangeEnd := tracker.NormalizeRange(start, end, loc)
		trackables = tracker.FilterRange(trackables, rangeStart, rangeEnd)
		tracker.SortForDisplay(trackables)
	}

	trackables = tracker.Annotate(trackables, h.now(), loc)

	h.writeJSON(w, http.StatusOK, TrackableListResponse{
		Trackables: trackables,
		Count:      len(trackables),
	})
}

// GetTrackable handles GET /api/v1/trackables/{id}.
func (h *Handlers) GetTrackable(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	t, err := h.store.GetTrackable(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.writeError(w, r, http.StatusNotFound, "trackable_not_found", "no such trackable")
			return
		}
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to load trackable")
		return
	}

	loc := h.location()
	t.IsCompletedToday = tracker.IsCompletedToday(t, h.now(), loc)
	h.writeJSON(w, http.StatusOK, t)
}

// CreateTrackable handles POST /api/v1/trackables.
func (h *Handlers) CreateTrackable(w http.ResponseWriter, r *http.Request) {
	var t models.Trackable
	if err := decodeBody(r, &t); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	if t.Status == "" {
		t.Status = models.StatusActive
	}
	if err := validation.Trackable(t); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	now := h.now()
	t.ID = uuid.New().String()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.DeletedAt = nil
	t.LastCompletedAt = nil
	t.CurrentCount = 0

	if err := h.store.AddTrackable(t); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to create trackable")
		return
	}

	t.IsCompletedToday = tracker.IsCompletedToday(t, now, h.location())
	h.writeJSON(w, http.StatusCreated, t)
}

// UpdateTrackable handles PUT /api/v1/trackables/{id}.
func (h *Handlers) UpdateTrackable(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := h.store.GetTrackable(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.writeError(w, r, http.StatusNotFound, "trackable_not_found", "no such trackable")
			return
		}
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to load trackable")
		return
	}

	var t models.Trackable
	if err := decodeBody(r, &t); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	// Type is fixed at creation; identity and bookkeeping fields are
	// server-owned.
	t.ID = existing.ID
	t.Type = existing.Type
	t.CreatedAt = existing.CreatedAt
	t.LastCompletedAt = existing.LastCompletedAt
	t.UpdatedAt = h.now()
	if t.Status == "" {
		t.Status = existing.Status
	}

	if err := validation.Trackable(t); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	if err := h.store.UpdateTrackable(t); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to update trackable")
		return
	}

	t.IsCompletedToday = tracker.IsCompletedToday(t, h.now(), h.location())
	h.writeJSON(w, http.StatusOK, t)
}

// CompleteTrackable handles POST /api/v1/trackables/{id}/complete. The
// mutation is type-specific: daily habits stamp their completion instant,
// one-time tasks flip to completed, progress counters increment.
func (h *Handlers) CompleteTrackable(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	t, err := h.store.GetTrackable(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.writeError(w, r, http.StatusNotFound, "trackable_not_found", "no such trackable")
			return
		}
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to load trackable")
		return
	}

	now := h.now()
	t.MarkCompleted(now)
	t.UpdatedAt = now

	if err := h.store.UpdateTrackable(t); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to save completion")
		return
	}

	t.IsCompletedToday = tracker.IsCompletedToday(t, now, h.location())
	h.writeJSON(w, http.StatusOK, t)
}

// DeleteTrackable handles DELETE /api/v1/trackables/{id} (soft delete).
func (h *Handlers) DeleteTrackable(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.DeleteTrackable(id); err != nil {
		h.writeError(w, r, http.StatusNotFound, "trackable_not_found", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RestoreTrackable handles POST /api/v1/trackables/{id}/restore.
func (h *Handlers) RestoreTrackable(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.RestoreTrackable(id); err != nil {
		h.writeError(w, r, http.StatusNotFound, "trackable_not_found", err.Error())
		return
	}

	t, err := h.store.GetTrackable(id)
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to load restored trackable")
		return
	}
	t.IsCompletedToday = tracker.IsCompletedToday(t, h.now(), h.location())
	h.writeJSON(w, http.StatusOK, t)
}
