package services

import (
	"testing"

	"github.com/isdelr/expense-tracker-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryList(t *testing.T) {
	svc := NewCategoryService()

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 15)

	expense, err := svc.List("expense")
	require.NoError(t, err)
	assert.Len(t, expense, 9)
	for _, c := range expense {
		assert.Equal(t, models.KindExpense, c.Kind)
	}

	income, err := svc.List("income")
	require.NoError(t, err)
	assert.Len(t, income, 6)
	assert.Equal(t, "Salary", income[0].Name)

	_, err = svc.List("transfer")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCategoryListReturnsCopy(t *testing.T) {
	svc := NewCategoryService()
	all, err := svc.List("")
	require.NoError(t, err)
	all[0].Name = "changed"

	again, err := svc.List("")
	require.NoError(t, err)
	assert.Equal(t, "Food & Dining", again[0].Name)
}
