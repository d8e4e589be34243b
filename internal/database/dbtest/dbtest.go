// Package dbtest provides migrated throwaway databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/isdelr/expense-tracker-be/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// New returns a migrated SQLite database in a temporary directory. It is
// closed when the test finishes.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	url := "sqlite://" + filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.Migrate(url), "failed to migrate test database")

	db, err := database.Open(url)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { db.Close() })
	return db
}
