package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/isdelr/expense-tracker-be/internal/models"
	"github.com/isdelr/expense-tracker-be/internal/store"
	"github.com/shopspring/decimal"
)

// ListLimit caps the number of transactions returned by List.
const ListLimit = 100

// TransactionRepository is the transaction store used by LedgerService.
type TransactionRepository interface {
	Create(ctx context.Context, tx models.Transaction) error
	Get(ctx context.Context, owner, id string) (models.Transaction, error)
	List(ctx context.Context, owner string, limit int) ([]models.Transaction, error)
	ListRange(ctx context.Context, owner string, start, end time.Time) ([]models.Transaction, error)
	Update(ctx context.Context, tx models.Transaction) error
	Delete(ctx context.Context, owner, id string) error
}

// TransactionInput carries client supplied transaction fields. Nil fields
// were not supplied.
type TransactionInput struct {
	Amount   *decimal.Decimal
	Category *string
	Date     *time.Time
	Notes    *string
	Kind     *models.Kind
}

// LedgerServiceProvider defines the interface for ledger services. Every
// method is scoped to the owner passed in.
type LedgerServiceProvider interface {
	List(ctx context.Context, owner string) ([]models.Transaction, error)
	Get(ctx context.Context, owner, id string) (models.Transaction, error)
	Create(ctx context.Context, owner string, in TransactionInput) (models.Transaction, error)
	Update(ctx context.Context, owner, id string, in TransactionInput) (models.Transaction, error)
	Delete(ctx context.Context, owner, id string) error
	ListRange(ctx context.Context, owner string, start, end time.Time) ([]models.Transaction, error)
	Summarize(ctx context.Context, owner string) (models.Summary, error)
}

// LedgerService provides business logic for transactions.
type LedgerService struct {
	transactions TransactionRepository
	events       EventServiceProvider
	now          func() time.Time
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(transactions TransactionRepository, events EventServiceProvider) *LedgerService {
	return &LedgerService{
		transactions: transactions,
		events:       events,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// List returns the owner's most recent transactions, newest first.
func (s *LedgerService) List(ctx context.Context, owner string) ([]models.Transaction, error) {
	return s.transactions.List(ctx, owner, ListLimit)
}

// Get returns a single transaction. Transactions of other users are reported
// as not found.
func (s *LedgerService) Get(ctx context.Context, owner, id string) (models.Transaction, error) {
	tx, err := s.transactions.Get(ctx, owner, id)
	if err != nil {
		return models.Transaction{}, translateNotFound(err)
	}
	return tx, nil
}

// Create validates and stores a new transaction for owner.
func (s *LedgerService) Create(ctx context.Context, owner string, in TransactionInput) (models.Transaction, error) {
	if in.Amount == nil || in.Category == nil || strings.TrimSpace(*in.Category) == "" {
		return models.Transaction{}, newError(ErrValidation, "Amount and category are required")
	}
	if err := validateInput(in); err != nil {
		return models.Transaction{}, err
	}

	now := s.now()
	tx := models.Transaction{
		ID:        uuid.New().String(),
		UserID:    owner,
		Amount:    *in.Amount,
		Category:  strings.TrimSpace(*in.Category),
		Date:      now,
		Kind:      models.KindExpense,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Date != nil {
		tx.Date = in.Date.UTC()
	}
	if in.Notes != nil {
		tx.Notes = *in.Notes
	}
	if in.Kind != nil {
		tx.Kind = *in.Kind
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		return models.Transaction{}, err
	}

	s.events.Record(ctx, owner, "expense.create", LevelInfo,
		fmt.Sprintf("Recorded %s of %s in '%s'.", tx.Kind, tx.Amount.String(), tx.Category))
	return tx, nil
}

// Update changes only the supplied fields of an existing transaction. Nothing
// is modified when any supplied field is invalid.
func (s *LedgerService) Update(ctx context.Context, owner, id string, in TransactionInput) (models.Transaction, error) {
	tx, err := s.transactions.Get(ctx, owner, id)
	if err != nil {
		return models.Transaction{}, translateNotFound(err)
	}

	if in.Category != nil && strings.TrimSpace(*in.Category) == "" {
		return models.Transaction{}, newError(ErrValidation, "Category cannot be empty")
	}
	if err := validateInput(in); err != nil {
		return models.Transaction{}, err
	}

	if in.Amount != nil {
		tx.Amount = *in.Amount
	}
	if in.Category != nil {
		tx.Category = strings.TrimSpace(*in.Category)
	}
	if in.Date != nil {
		tx.Date = in.Date.UTC()
	}
	if in.Notes != nil {
		tx.Notes = *in.Notes
	}
	if in.Kind != nil {
		tx.Kind = *in.Kind
	}
	tx.UpdatedAt = s.now()

	if err := s.transactions.Update(ctx, tx); err != nil {
		return models.Transaction{}, translateNotFound(err)
	}

	s.events.Record(ctx, owner, "expense.update", LevelInfo, fmt.Sprintf("Updated transaction in '%s'.", tx.Category))
	return tx, nil
}

// Delete removes a transaction of owner.
func (s *LedgerService) Delete(ctx context.Context, owner, id string) error {
	if err := s.transactions.Delete(ctx, owner, id); err != nil {
		return translateNotFound(err)
	}
	s.events.Record(ctx, owner, "expense.delete", LevelWarn, "Deleted a transaction.")
	return nil
}

// ListRange returns every transaction of owner dated within [start, end],
// newest first.
func (s *LedgerService) ListRange(ctx context.Context, owner string, start, end time.Time) ([]models.Transaction, error) {
	return s.transactions.ListRange(ctx, owner, start, end)
}

// Summarize aggregates all of the owner's transactions.
func (s *LedgerService) Summarize(ctx context.Context, owner string) (models.Summary, error) {
	txs, err := s.transactions.List(ctx, owner, 0)
	if err != nil {
		return models.Summary{}, err
	}
	return Summarize(txs), nil
}

func validateInput(in TransactionInput) error {
	if in.Amount != nil && !in.Amount.IsPositive() {
		return newError(ErrValidation, "Amount must be greater than 0")
	}
	if in.Notes != nil && utf8.RuneCountInString(*in.Notes) > models.MaxNotesLength {
		return newError(ErrValidation, fmt.Sprintf("Notes cannot exceed %d characters", models.MaxNotesLength))
	}
	if in.Kind != nil && !in.Kind.Valid() {
		return newError(ErrValidation, "Type must be 'expense' or 'income'")
	}
	return nil
}

func translateNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return newError(ErrNotFound, "Expense not found")
	}
	return err
}
