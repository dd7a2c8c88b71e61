package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shortiehands/finances-tracking-app/internal/core"
)

// requiredFields is the validation order for create and update payloads.
var requiredFields = []string{"date", "type", "amount", "category", "description"}

// transactionResponse is the wire form of a record. TransportType serializes
// as null when absent.
type transactionResponse struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	TransportType *string `json:"transport_type"`
}

type summaryResponse struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
}

func toResponse(tx core.Transaction) transactionResponse {
	return transactionResponse{
		ID:            tx.ID,
		Date:          tx.Date.UTC().Format(time.RFC3339),
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		Category:      tx.Category,
		Description:   tx.Description,
		TransportType: tx.TransportType,
	}
}

// transactionFromPayload runs the wire-level validation pipeline and builds the
// record. The returned message is the 400 response body text when ok is false.
func transactionFromPayload(p *requestPayload) (core.Transaction, string, bool) {
	for _, field := range requiredFields {
		if !p.Has(field) {
			return core.Transaction{}, "Missing required field: " + field, false
		}
	}

	if p.String("category") == core.CategoryTransport && !p.Has("transport_type") {
		return core.Transaction{}, "Transport type is required for transport category", false
	}

	date, err := parseDate(p.String("date"))
	if err != nil {
		return core.Transaction{}, fmt.Sprintf("Invalid date format: %v", err), false
	}

	amount, err := p.Float("amount")
	if err != nil {
		return core.Transaction{}, fmt.Sprintf("Invalid amount: %v", err), false
	}

	tx := core.Transaction{
		Date:          date,
		Type:          core.TransactionType(p.String("type")),
		Amount:        amount,
		Category:      p.String("category"),
		Description:   p.String("description"),
		TransportType: p.StringPtr("transport_type"),
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Sprintf("Invalid transaction: %v", err), false
	}
	return tx, "", true
}

// parseID extracts the {id} path value. ok is false for non-integer ids, which
// get the same 404 as an unknown id.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.store.GetAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List transactions error", "request_id", requestIDFrom(r.Context()), "error", err)
		writeMessage(w, http.StatusInternalServerError, "Error fetching transactions: %v", err)
		return
	}

	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toResponse(tx))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		notFound(w)
		return
	}

	tx, err := s.store.GetByID(r.Context(), id)
	if errors.Is(err, core.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Get transaction error", "request_id", requestIDFrom(r.Context()), "error", err, "id", id)
		writeMessage(w, http.StatusInternalServerError, "Error fetching transaction: %v", err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(tx))
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	p, err := parsePayload(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, msg, ok := transactionFromPayload(p)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "%s", msg)
		return
	}

	id, err := s.store.Insert(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create transaction error", "request_id", requestIDFrom(r.Context()), "error", err)
		writeMessage(w, http.StatusInternalServerError, "Error adding transaction: %v", err)
		return
	}

	tx.ID = id
	writeJSON(w, http.StatusCreated, toResponse(tx))
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		notFound(w)
		return
	}

	// Resolve the target before validating the payload, so an unknown id
	// short-circuits to 404.
	if _, err := s.store.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			notFound(w)
			return
		}
		slog.ErrorContext(r.Context(), "Update transaction error", "request_id", requestIDFrom(r.Context()), "error", err, "id", id)
		writeMessage(w, http.StatusInternalServerError, "Error updating transaction: %v", err)
		return
	}

	p, err := parsePayload(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, msg, ok := transactionFromPayload(p)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "%s", msg)
		return
	}

	if err := s.store.Update(r.Context(), id, tx); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			notFound(w)
			return
		}
		slog.ErrorContext(r.Context(), "Update transaction error", "request_id", requestIDFrom(r.Context()), "error", err, "id", id)
		writeMessage(w, http.StatusInternalServerError, "Error updating transaction: %v", err)
		return
	}

	tx.ID = id
	writeJSON(w, http.StatusOK, toResponse(tx))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		notFound(w)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			notFound(w)
			return
		}
		slog.ErrorContext(r.Context(), "Delete transaction error", "request_id", requestIDFrom(r.Context()), "error", err, "id", id)
		writeMessage(w, http.StatusInternalServerError, "Error deleting transaction: %v", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	txs, err := s.store.GetAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary error", "request_id", requestIDFrom(r.Context()), "error", err)
		writeMessage(w, http.StatusInternalServerError, "Error calculating summary: %v", err)
		return
	}

	sum := core.ComputeSummary(txs)
	writeJSON(w, http.StatusOK, summaryResponse{
		TotalIncome:   sum.TotalIncome,
		TotalExpenses: sum.TotalExpenses,
		Balance:       sum.Balance,
	})
}
