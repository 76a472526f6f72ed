// Package testdb opens throwaway migrated SQLite databases for tests.
package testdb

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"showrank/pkg/database"
)

// Open returns a migrated database under t.TempDir, closed on cleanup.
func Open(t testing.TB) *sql.DB {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = db.Close() })
	return db
}
