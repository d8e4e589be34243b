package services

import (
	"testing"

	"github.com/isdelr/expense-tracker-be/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tx(amount string, category string, k models.Kind) models.Transaction {
	return models.Transaction{Amount: decimal.RequireFromString(amount), Category: category, Kind: k}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.TotalExpense.IsZero())
	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.NotNil(t, s.ByCategory)
	assert.Equal(t, 0, s.Count)
}

func TestSummarizeMixesKindsPerCategory(t *testing.T) {
	s := Summarize([]models.Transaction{
		tx("30", "Other", models.KindExpense),
		tx("20", "Other", models.KindIncome),
		tx("0.1", "Food & Dining", models.KindExpense),
		tx("0.2", "Food & Dining", models.KindExpense),
	})

	// Expense and income amounts are added together within a category.
	assert.True(t, decimal.NewFromInt(50).Equal(s.ByCategory["Other"]))
	assert.True(t, decimal.RequireFromString("0.3").Equal(s.ByCategory["Food & Dining"]))
	assert.True(t, decimal.RequireFromString("30.3").Equal(s.TotalExpense))
	assert.True(t, decimal.NewFromInt(20).Equal(s.TotalIncome))
	assert.Equal(t, 4, s.Count)
}

func TestSummarizeBalanceInvariant(t *testing.T) {
	sets := [][]models.Transaction{
		{tx("1", "a", models.KindExpense)},
		{tx("1", "a", models.KindIncome)},
		{tx("10.55", "a", models.KindExpense), tx("3.45", "b", models.KindIncome), tx("99", "c", models.KindIncome)},
	}
	for _, set := range sets {
		s := Summarize(set)
		assert.True(t, s.Balance.Equal(s.TotalIncome.Sub(s.TotalExpense)))
		assert.Equal(t, len(set), s.Count)
	}
}
