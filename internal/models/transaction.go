package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The client treats amounts as numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind distinguishes money going out from money coming in.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindExpense || k == KindIncome
}

// MaxNotesLength is the maximum number of characters allowed in Notes.
const MaxNotesLength = 500

// Transaction is a single recorded expense or income entry owned by one user.
type Transaction struct {
	ID        string          `json:"_id" db:"id"`
	UserID    string          `json:"userId" db:"user_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Category  string          `json:"category" db:"category"`
	Date      time.Time       `json:"date" db:"date"`
	Notes     string          `json:"notes" db:"notes"`
	Kind      Kind            `json:"type" db:"kind"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}

// Summary is the aggregated view over all of a user's transactions.
// ByCategory sums amounts per category regardless of kind.
type Summary struct {
	TotalExpense decimal.Decimal            `json:"totalExpense"`
	TotalIncome  decimal.Decimal            `json:"totalIncome"`
	Balance      decimal.Decimal            `json:"balance"`
	ByCategory   map[string]decimal.Decimal `json:"byCategory"`
	Count        int                        `json:"count"`
}
