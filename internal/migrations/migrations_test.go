package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUp_SQLite(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	n, err := Up(ctx, db, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	version, err := Version(ctx, db, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM listings").Scan(&count))
	assert.Equal(t, 3, count)
}

func TestUp_Idempotent(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	_, err := Up(ctx, db, "sqlite")
	require.NoError(t, err)

	n, err := Up(ctx, db, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestUp_UnknownDriver(t *testing.T) {
	db := openSQLite(t)

	_, err := Up(context.Background(), db, "mongo")
	assert.Error(t, err)
}

func TestEmbeddedFiles(t *testing.T) {
	for _, dir := range []string{"sqlite", "postgres"} {
		entries, err := files.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2, dir)
	}
}
