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

// MetricListResponse wraps a list of metric entries.
type MetricListResponse struct {
	Entries []models.MetricEntry `json:"entries"`
	Count   int                  `json:"count"`
}

// dayRange extracts and validates start/end day query parameters, defaulting
// to today's calendar day in the viewer's timezone when absent.
func (h *Handlers) dayRange(r *http.Request) (string, string, error) {
	q := r.URL.Query()
	start, end := q.Get("start"), q.Get("end")
	if start == "" && end == "" {
		today := h.now().In(h.location()).Format("2006-01-02")
		return today, today, nil
	}
	if !utils.ValidateDateFormat(start) {
		return "", "", errors.New("start must be YYYY-MM-DD")
	}
	if !utils.ValidateDateFormat(end) {
		return "", "", errors.New("end must be YYYY-MM-DD")
	}
	return start, end, nil
}

// ListMetricEntries handles GET /api/v1/metric-entries.
func (h *Handlers) ListMetricEntries(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.dayRange(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid_range", err.Error())
		return
	}

	entries, err := h.store.GetMetricEntries(start, end)
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to list metric entries")
		return
	}

	h.writeJSON(w, http.StatusOK, MetricListResponse{Entries: entries, Count: len(entries)})
}

// CreateMetricEntry handles POST /api/v1/metric-entries.
func (h *Handlers) CreateMetricEntry(w http.ResponseWriter, r *http.Request) {
	var e models.MetricEntry
	if err := decodeBody(r, &e); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	if e.Day == "" {
		e.Day = h.now().In(h.location()).Format("2006-01-02")
	}
	if err := validation.MetricEntry(e); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	now := h.now()
	e.ID = uuid.New().String()
	e.CreatedAt = now
	e.UpdatedAt = now
	e.DeletedAt = nil

	if err := h.store.AddMetricEntry(e); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to create metric entry")
		return
	}

	h.writeJSON(w, http.StatusCreated, e)
}

// UpdateMetricEntry handles PUT /api/v1/metric-entries/{id}.
func (h *Handlers) UpdateMetricEntry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := h.store.GetMetricEntry(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.writeError(w, r, http.StatusNotFound, "metric_entry_not_found", "no such metric entry")
			return
		}
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to load metric entry")
		return
	}

	var e models.MetricEntry
	if err := decodeBody(r, &e); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = h.now()

	if err := validation.MetricEntry(e); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	if err := h.store.UpdateMetricEntry(e); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to update metric entry")
		return
	}

	h.writeJSON(w, http.StatusOK, e)
}

// DeleteMetricEntry handles DELETE /api/v1/metric-entries/{id}.
func (h *Handlers) DeleteMetricEntry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.DeleteMetricEntry(id); err != nil {
		h.writeError(w, r, http.StatusNotFound, "metric_entry_not_found", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
