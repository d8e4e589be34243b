package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/isdelr/expense-tracker-be/internal/models"
	"github.com/jmoiron/sqlx"
)

const transactionColumns = "id, user_id, amount, category, date, notes, kind, created_at, updated_at"

// TransactionStore persists transactions. Every query is scoped by owner.
type TransactionStore struct {
	db *sqlx.DB
}

// NewTransactionStore creates a new TransactionStore.
func NewTransactionStore(db *sqlx.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// Create inserts a transaction.
func (s *TransactionStore) Create(ctx context.Context, tx models.Transaction) error {
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO transactions (id, user_id, amount, category, date, notes, kind, created_at, updated_at)
		VALUES (:id, :user_id, :amount, :category, :date, :notes, :kind, :created_at, :updated_at)`, tx)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// Get retrieves the transaction with the given id owned by owner.
func (s *TransactionStore) Get(ctx context.Context, owner, id string) (models.Transaction, error) {
	var tx models.Transaction
	query := s.db.Rebind("SELECT " + transactionColumns + " FROM transactions WHERE id = ? AND user_id = ?")
	if err := s.db.GetContext(ctx, &tx, query, id, owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transaction{}, ErrNotFound
		}
		return models.Transaction{}, fmt.Errorf("select transaction: %w", err)
	}
	return tx, nil
}

// List returns owner's transactions, newest first. A limit of zero or less
// returns all of them.
func (s *TransactionStore) List(ctx context.Context, owner string, limit int) ([]models.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE user_id = ? ORDER BY date DESC, created_at DESC"
	args := []interface{}{owner}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	txs := []models.Transaction{}
	if err := s.db.SelectContext(ctx, &txs, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	return txs, nil
}

// ListRange returns owner's transactions dated within [start, end], newest first.
func (s *TransactionStore) ListRange(ctx context.Context, owner string, start, end time.Time) ([]models.Transaction, error) {
	query := s.db.Rebind("SELECT " + transactionColumns + ` FROM transactions
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date DESC, created_at DESC`)

	txs := []models.Transaction{}
	if err := s.db.SelectContext(ctx, &txs, query, owner, start.UTC(), end.UTC()); err != nil {
		return nil, fmt.Errorf("select transactions in range: %w", err)
	}
	return txs, nil
}

// Update overwrites the mutable fields of tx. The row must belong to tx.UserID.
func (s *TransactionStore) Update(ctx context.Context, tx models.Transaction) error {
	res, err := s.db.NamedExecContext(ctx, `
		UPDATE transactions
		SET amount = :amount, category = :category, date = :date, notes = :notes, kind = :kind, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id`, tx)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return requireRow(res)
}

// Delete removes the transaction with the given id owned by owner.
func (s *TransactionStore) Delete(ctx context.Context, owner, id string) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM transactions WHERE id = ? AND user_id = ?"), id, owner)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
