package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"listingadmin/internal/models"
	"listingadmin/internal/repository"
	"listingadmin/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := New(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestDatabase_Connection(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	dbPath := filepath.Join(dir, "listings.db")

	db, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")
}

func TestDatabase_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	db, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, NewListingRepository(db).UpdateStatus(ctx, 2, models.StatusApproved))
	require.NoError(t, db.Close())

	db, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer db.Close()

	all, err := NewListingRepository(db).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3, "seed rows must not be inserted twice")
	assert.Equal(t, models.StatusApproved, all[1].Status)
}

func TestListingRepository(t *testing.T) {
	repotest.ListingRepositoryTests(t, func(t *testing.T) repository.ListingRepository {
		return NewListingRepository(setupTestDB(t))
	})
}

func TestSessionRepository(t *testing.T) {
	repotest.SessionRepositoryTests(t, func(t *testing.T) repository.SessionRepository {
		return NewSessionRepository(setupTestDB(t))
	})
}
