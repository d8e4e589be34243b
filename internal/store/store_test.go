package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/expense-tracker-be/internal/database/dbtest"
	"github.com/isdelr/expense-tracker-be/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// StoreTestSuite exercises the stores against a migrated SQLite database.
type StoreTestSuite struct {
	suite.Suite
	ctx          context.Context
	users        *UserStore
	transactions *TransactionStore
	events       *EventStore
	alice        models.User
	bob          models.User
}

func (suite *StoreTestSuite) SetupTest() {
	db := dbtest.New(suite.T())
	suite.ctx = context.Background()
	suite.users = NewUserStore(db)
	suite.transactions = NewTransactionStore(db)
	suite.events = NewEventStore(db)

	suite.alice = suite.createUser("alice", "alice@example.com")
	suite.bob = suite.createUser("bob", "bob@example.com")
}

func (suite *StoreTestSuite) createUser(username, email string) models.User {
	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(suite.T(), suite.users.Create(suite.ctx, user))
	return user
}

func (suite *StoreTestSuite) newTransaction(owner string, amount string, category string, date time.Time) models.Transaction {
	now := time.Now().UTC()
	tx := models.Transaction{
		ID:        uuid.New().String(),
		UserID:    owner,
		Amount:    decimal.RequireFromString(amount),
		Category:  category,
		Date:      date.UTC(),
		Kind:      models.KindExpense,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(suite.T(), suite.transactions.Create(suite.ctx, tx))
	return tx
}

func (suite *StoreTestSuite) TestUserLookup() {
	byEmail, err := suite.users.GetByEmail(suite.ctx, "alice@example.com")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.alice.ID, byEmail.ID)
	assert.Equal(suite.T(), "hash", byEmail.PasswordHash)

	byID, err := suite.users.GetByID(suite.ctx, suite.bob.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "bob", byID.Username)

	_, err = suite.users.GetByEmail(suite.ctx, "nobody@example.com")
	assert.ErrorIs(suite.T(), err, ErrNotFound)

	exists, err := suite.users.ExistsByEmail(suite.ctx, "alice@example.com")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), exists)

	exists, err = suite.users.ExistsByEmail(suite.ctx, "nobody@example.com")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), exists)
}

func (suite *StoreTestSuite) TestUserUniqueness() {
	dupEmail := models.User{ID: uuid.New().String(), Username: "alice2", Email: "alice@example.com", PasswordHash: "h", CreatedAt: time.Now().UTC()}
	assert.ErrorIs(suite.T(), suite.users.Create(suite.ctx, dupEmail), ErrDuplicate)

	dupName := models.User{ID: uuid.New().String(), Username: "alice", Email: "other@example.com", PasswordHash: "h", CreatedAt: time.Now().UTC()}
	assert.ErrorIs(suite.T(), suite.users.Create(suite.ctx, dupName), ErrDuplicate)
}

func (suite *StoreTestSuite) TestTransactionRoundTrip() {
	date := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
	created := suite.newTransaction(suite.alice.ID, "12.34", "Food & Dining", date)

	got, err := suite.transactions.Get(suite.ctx, suite.alice.ID, created.ID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), decimal.RequireFromString("12.34").Equal(got.Amount), "amount %s", got.Amount)
	assert.Equal(suite.T(), "Food & Dining", got.Category)
	assert.True(suite.T(), date.Equal(got.Date), "date %s", got.Date)
	assert.Equal(suite.T(), models.KindExpense, got.Kind)
	assert.Equal(suite.T(), suite.alice.ID, got.UserID)
}

func (suite *StoreTestSuite) TestGetIsScopedToOwner() {
	tx := suite.newTransaction(suite.alice.ID, "10", "Travel", time.Now())

	_, err := suite.transactions.Get(suite.ctx, suite.bob.ID, tx.ID)
	assert.ErrorIs(suite.T(), err, ErrNotFound)

	_, err = suite.transactions.Get(suite.ctx, suite.alice.ID, "missing")
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *StoreTestSuite) TestListOrderAndLimit() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		suite.newTransaction(suite.alice.ID, fmt.Sprintf("%d", i+1), "Other", base.Add(time.Duration(i)*time.Hour))
	}
	suite.newTransaction(suite.bob.ID, "99", "Other", base)

	all, err := suite.transactions.List(suite.ctx, suite.alice.ID, 0)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), all, 5)
	for i := 1; i < len(all); i++ {
		assert.True(suite.T(), all[i-1].Date.After(all[i].Date), "expected newest first")
	}

	limited, err := suite.transactions.List(suite.ctx, suite.alice.ID, 3)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), limited, 3)
	assert.True(suite.T(), decimal.NewFromInt(5).Equal(limited[0].Amount))

	empty, err := suite.transactions.List(suite.ctx, uuid.New().String(), 0)
	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), empty)
	assert.Empty(suite.T(), empty)
}

func (suite *StoreTestSuite) TestListRangeIsInclusive() {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan15 := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	feb1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	suite.newTransaction(suite.alice.ID, "1", "Other", jan1)
	suite.newTransaction(suite.alice.ID, "2", "Other", jan15)
	suite.newTransaction(suite.alice.ID, "3", "Other", jan31)
	suite.newTransaction(suite.alice.ID, "4", "Other", feb1)
	suite.newTransaction(suite.bob.ID, "5", "Other", jan15)

	got, err := suite.transactions.ListRange(suite.ctx, suite.alice.ID, jan1, jan31)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), got, 3)
	assert.True(suite.T(), jan31.Equal(got[0].Date))
	assert.True(suite.T(), jan1.Equal(got[2].Date))
}

func (suite *StoreTestSuite) TestUpdateAndDelete() {
	tx := suite.newTransaction(suite.alice.ID, "10", "Travel", time.Now())

	tx.Notes = "train"
	tx.Amount = decimal.RequireFromString("15.5")
	require.NoError(suite.T(), suite.transactions.Update(suite.ctx, tx))

	got, err := suite.transactions.Get(suite.ctx, suite.alice.ID, tx.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "train", got.Notes)
	assert.True(suite.T(), decimal.RequireFromString("15.5").Equal(got.Amount))

	// Someone else's id cannot be updated or deleted.
	foreign := tx
	foreign.UserID = suite.bob.ID
	assert.ErrorIs(suite.T(), suite.transactions.Update(suite.ctx, foreign), ErrNotFound)
	assert.ErrorIs(suite.T(), suite.transactions.Delete(suite.ctx, suite.bob.ID, tx.ID), ErrNotFound)

	require.NoError(suite.T(), suite.transactions.Delete(suite.ctx, suite.alice.ID, tx.ID))
	assert.ErrorIs(suite.T(), suite.transactions.Delete(suite.ctx, suite.alice.ID, tx.ID), ErrNotFound)
}

func (suite *StoreTestSuite) TestEvents() {
	old := models.Event{ID: uuid.New().String(), UserID: suite.alice.ID, Type: "user.login", Level: "info", Message: "old", CreatedAt: time.Now().UTC().Add(-48 * time.Hour)}
	recent := models.Event{ID: uuid.New().String(), UserID: suite.alice.ID, Type: "expense.create", Level: "info", Message: "recent", CreatedAt: time.Now().UTC()}
	other := models.Event{ID: uuid.New().String(), UserID: suite.bob.ID, Type: "user.login", Level: "info", Message: "bob", CreatedAt: time.Now().UTC()}
	for _, e := range []models.Event{old, recent, other} {
		require.NoError(suite.T(), suite.events.Create(suite.ctx, e))
	}

	list, err := suite.events.ListRecent(suite.ctx, suite.alice.ID, 10)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 2)
	assert.Equal(suite.T(), "recent", list[0].Message)

	removed, err := suite.events.DeleteOlderThan(suite.ctx, time.Now().Add(-24*time.Hour))
	require.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 1, removed)

	list, err = suite.events.ListRecent(suite.ctx, suite.alice.ID, 10)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), list, 1)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
