// Package events forwards activity events to external consumers.
package events

import (
	"context"

	"github.com/isdelr/expense-tracker-be/internal/models"
)

// Publisher delivers activity events to a message broker.
type Publisher interface {
	Publish(ctx context.Context, event models.Event) error
	Close() error
}
