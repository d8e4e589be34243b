package models

import "time"

// Event represents an entry in a user's activity log.
type Event struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Type      string    `json:"type" db:"type"`   // e.g., "expense.create", "user.login"
	Level     string    `json:"level" db:"level"` // e.g., "info", "warn"
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
