package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		url     string
		dialect Dialect
		dsn     string
	}{
		{"sqlite://./expenses.db", SQLite, "./expenses.db"},
		{"sqlite:///var/lib/expenses.db", SQLite, "/var/lib/expenses.db"},
		{"postgres://u:p@localhost/db?sslmode=disable", Postgres, "postgres://u:p@localhost/db?sslmode=disable"},
		{"postgresql://localhost/db", Postgres, "postgresql://localhost/db"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			dialect, dsn, err := ParseURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.dialect, dialect)
			assert.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestParseURLRejectsUnknownScheme(t *testing.T) {
	for _, url := range []string{"mongodb://localhost/db", "./expenses.db", "sqlite://"} {
		_, _, err := ParseURL(url)
		assert.Error(t, err, url)
	}
}

func TestOpenAndMigrateSQLite(t *testing.T) {
	url := "sqlite://" + filepath.Join(t.TempDir(), "test.db")

	require.NoError(t, Migrate(url))
	// Running again is a no-op.
	require.NoError(t, Migrate(url))

	db, err := Open(url)
	require.NoError(t, err)
	defer db.Close()

	var tables []string
	err = db.Select(&tables, "SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'transactions', 'events') ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []string{"events", "transactions", "users"}, tables)
}
