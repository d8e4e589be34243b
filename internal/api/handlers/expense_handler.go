package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/expense-tracker-be/internal/models"
	"github.com/isdelr/expense-tracker-be/internal/services"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles HTTP requests for a user's transactions.
type ExpenseHandler struct {
	service services.LedgerServiceProvider
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(service services.LedgerServiceProvider) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// ExpensePayload is the body of create and update requests. Absent fields
// decode to nil; an empty date or type is treated as absent.
type ExpensePayload struct {
	Amount   *decimal.Decimal `json:"amount"`
	Category *string          `json:"category"`
	Date     *string          `json:"date"`
	Notes    *string          `json:"notes"`
	Type     *string          `json:"type"`
}

func (p ExpensePayload) input() (services.TransactionInput, error) {
	in := services.TransactionInput{
		Amount:   p.Amount,
		Category: p.Category,
		Notes:    p.Notes,
	}
	if p.Date != nil && *p.Date != "" {
		t, _, err := models.ParseDate(*p.Date)
		if err != nil {
			return in, &services.Error{Kind: services.ErrValidation, Msg: "Invalid date"}
		}
		in.Date = &t
	}
	if p.Type != nil && *p.Type != "" {
		k := models.Kind(*p.Type)
		in.Kind = &k
	}
	return in, nil
}

func decodeExpense(w http.ResponseWriter, r *http.Request) (services.TransactionInput, bool) {
	var payload ExpensePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return services.TransactionInput{}, false
	}
	in, err := payload.input()
	if err != nil {
		writeError(w, r, err)
		return services.TransactionInput{}, false
	}
	return in, true
}

// List returns the caller's most recent transactions.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	txs, err := h.service.List(r.Context(), p.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(txs))
}

// Get returns one transaction.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	tx, err := h.service.Get(r.Context(), p.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

// Create records a new transaction.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	in, ok := decodeExpense(w, r)
	if !ok {
		return
	}
	tx, err := h.service.Create(r.Context(), p.UserID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

// Update changes the supplied fields of a transaction.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	in, ok := decodeExpense(w, r)
	if !ok {
		return
	}
	tx, err := h.service.Update(r.Context(), p.UserID, chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

// Delete removes a transaction.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), p.UserID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Expense deleted successfully"})
}

// Range returns the caller's transactions dated between the start and end
// path parameters, inclusive. A date-only end covers that whole day.
func (h *ExpenseHandler) Range(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	start, _, err := models.ParseDate(chi.URLParam(r, "start"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid start date")
		return
	}
	end, dateOnly, err := models.ParseDate(chi.URLParam(r, "end"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid end date")
		return
	}
	if dateOnly {
		end = models.EndOfDay(end)
	}

	txs, err := h.service.ListRange(r.Context(), p.UserID, start, end)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(txs))
}

// Summary returns totals over all of the caller's transactions.
func (h *ExpenseHandler) Summary(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	summary, err := h.service.Summarize(r.Context(), p.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
