package store

import (
	"context"
	"fmt"
	"time"

	"github.com/isdelr/expense-tracker-be/internal/models"
	"github.com/jmoiron/sqlx"
)

// EventStore persists activity events.
type EventStore struct {
	db *sqlx.DB
}

// NewEventStore creates a new EventStore.
func NewEventStore(db *sqlx.DB) *EventStore {
	return &EventStore{db: db}
}

// Create inserts an event.
func (s *EventStore) Create(ctx context.Context, event models.Event) error {
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO events (id, user_id, type, level, message, created_at)
		VALUES (:id, :user_id, :type, :level, :message, :created_at)`, event)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// ListRecent returns the most recent events of owner.
func (s *EventStore) ListRecent(ctx context.Context, owner string, limit int) ([]models.Event, error) {
	events := []models.Event{}
	query := s.db.Rebind("SELECT id, user_id, type, level, message, created_at FROM events WHERE user_id = ? ORDER BY created_at DESC LIMIT ?")
	if err := s.db.SelectContext(ctx, &events, query, owner, limit); err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	return events, nil
}

// DeleteOlderThan removes every event created before cutoff and returns how
// many were removed.
func (s *EventStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM events WHERE created_at < ?"), cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete events: %w", err)
	}
	return res.RowsAffected()
}
