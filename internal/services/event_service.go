package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/expense-tracker-be/internal/events"
	"github.com/isdelr/expense-tracker-be/internal/models"
	"github.com/rs/zerolog/log"
)

// Event levels.
const (
	LevelInfo = "info"
	LevelWarn = "warn"
)

// Limits for Recent.
const (
	DefaultEventLimit = 20
	MaxEventLimit     = 100
)

// EventRepository is the event store used by EventService.
type EventRepository interface {
	Create(ctx context.Context, event models.Event) error
	ListRecent(ctx context.Context, owner string, limit int) ([]models.Event, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// EventServiceProvider defines the interface for event services.
type EventServiceProvider interface {
	Record(ctx context.Context, userID, eventType, level, message string)
	Recent(ctx context.Context, owner string, limit int) ([]models.Event, error)
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

// EventService keeps the per-user activity log and forwards entries to an
// optional publisher.
type EventService struct {
	repo      EventRepository
	publisher events.Publisher
}

// NewEventService creates a new EventService. publisher may be nil.
func NewEventService(repo EventRepository, publisher events.Publisher) *EventService {
	return &EventService{repo: repo, publisher: publisher}
}

// Record stores an event. Failures are logged and never returned so that the
// calling operation is unaffected.
func (s *EventService) Record(ctx context.Context, userID, eventType, level, message string) {
	event := models.Event{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      eventType,
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		log.Error().Err(err).Str("event_type", eventType).Str("user_id", userID).Msg("Failed to store event")
		return
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.Warn().Err(err).Str("event_type", eventType).Msg("Failed to publish event")
		}
	}
}

// Recent returns the newest events of owner. Out of range limits fall back
// to DefaultEventLimit or are capped at MaxEventLimit.
func (s *EventService) Recent(ctx context.Context, owner string, limit int) ([]models.Event, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	if limit > MaxEventLimit {
		limit = MaxEventLimit
	}
	return s.repo.ListRecent(ctx, owner, limit)
}

// Prune deletes events older than retention.
func (s *EventService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.DeleteOlderThan(ctx, time.Now().Add(-retention))
}
