package services

import (
	"github.com/isdelr/expense-tracker-be/internal/models"
	"github.com/shopspring/decimal"
)

// Summarize aggregates transactions into totals and a per-category breakdown.
// ByCategory adds expense and income amounts together; it does not
// distinguish kinds.
func Summarize(txs []models.Transaction) models.Summary {
	summary := models.Summary{
		TotalExpense: decimal.Zero,
		TotalIncome:  decimal.Zero,
		ByCategory:   make(map[string]decimal.Decimal),
		Count:        len(txs),
	}

	for _, tx := range txs {
		switch tx.Kind {
		case models.KindExpense:
			summary.TotalExpense = summary.TotalExpense.Add(tx.Amount)
		case models.KindIncome:
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		}
		summary.ByCategory[tx.Category] = summary.ByCategory[tx.Category].Add(tx.Amount)
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary
}
