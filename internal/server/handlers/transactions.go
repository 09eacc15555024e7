package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"tracklit/internal/models"
	"tracklit/internal/validation"
)

// TransactionListResponse wraps a list of transactions.
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// TransactionSummaryResponse wraps per-category transaction totals.
type TransactionSummaryResponse struct {
	Categories []models.CategorySummary `json:"categories"`
	Total      int64                    `json:"total"`
}

// ListTransactions handles GET /api/v1/transactions.
func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.dayRange(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid_range", err.Error())
		return
	}

	transactions, err := h.store.GetTransactions(start, end)
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to list transactions")
		return
	}

	h.writeJSON(w, http.StatusOK, TransactionListResponse{Transactions: transactions, Count: len(transactions)})
}

// SummarizeTransactions handles GET /api/v1/transactions/summary.
func (h *Handlers) SummarizeTransactions(w http.ResponseWriter, r *http.Request) {
	start, end, err := h.dayRange(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid_range", err.Error())
		return
	}

	categories, err := h.store.SummarizeTransactions(start, end)
	if err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to summarize transactions")
		return
	}

	var total int64
	for _, c := range categories {
		total += c.Total
	}

	h.writeJSON(w, http.StatusOK, TransactionSummaryResponse{Categories: categories, Total: total})
}

// CreateTransaction handles POST /api/v1/transactions.
func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var t models.Transaction
	if err := decodeBody(r, &t); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	if t.Day == "" {
		t.Day = h.now().In(h.location()).Format("2006-01-02")
	}
	if t.Currency == "" {
		t.Currency = "USD"
	}
	if err := validation.Transaction(t); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	now := h.now()
	t.ID = uuid.New().String()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.DeletedAt = nil

	if err := h.store.AddTransaction(t); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to create transaction")
		return
	}

	h.writeJSON(w, http.StatusCreated, t)
}

// UpdateTransaction handles PUT /api/v1/transactions/{id}.
func (h *Handlers) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := h.store.GetTransaction(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.writeError(w, r, http.StatusNotFound, "transaction_not_found", "no such transaction")
			return
		}
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to load transaction")
		return
	}

	var t models.Transaction
	if err := decodeBody(r, &t); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = h.now()
	if t.Currency == "" {
		t.Currency = existing.Currency
	}

	if err := validation.Transaction(t); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	if err := h.store.UpdateTransaction(t); err != nil {
		h.writeError(w, r, http.StatusInternalServerError, "storage_error", "failed to update transaction")
		return
	}

	h.writeJSON(w, http.StatusOK, t)
}

// DeleteTransaction handles DELETE /api/v1/transactions/{id}.
func (h *Handlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.DeleteTransaction(id); err != nil {
		h.writeError(w, r, http.StatusNotFound, "transaction_not_found", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
