// Package testutil provides helpers for repository tests backed by a real
// sqlite database.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"newspulse/backend/internal/db"
	"newspulse/backend/internal/snowflake"
)

// NewTestDB opens a migrated sqlite database in a per-test temp dir and
// initializes the snowflake node used by repositories.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	require.NoError(t, snowflake.Init(1))

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}
