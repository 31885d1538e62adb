// Package repotest holds behavior tests shared by every repository backend.
// Each backend's tests call these with a constructor for a fresh, seeded store.
package repotest

import (
	"context"
	"errors"
	"testing"
	"time"

	"listingadmin/internal/common"
	"listingadmin/internal/models"
	"listingadmin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ListingRepositoryTests runs the listing store contract. newRepo must return
// a store holding exactly models.SeedListings().
func ListingRepositoryTests(t *testing.T, newRepo func(t *testing.T) repository.ListingRepository) {
	ctx := context.Background()

	t.Run("GetAll returns seed in id order", func(t *testing.T) {
		repo := newRepo(t)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.SeedListings(), all)
	})

	t.Run("GetByID", func(t *testing.T) {
		repo := newRepo(t)

		l, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, models.Listing{ID: 2, Car: "Honda Civic", Status: models.StatusPending}, *l)
	})

	t.Run("GetByID missing", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(ctx, 99)
		assert.True(t, errors.Is(err, common.ErrNotFound), "got %v", err)
	})

	t.Run("UpdateStatus changes only the target", func(t *testing.T) {
		repo := newRepo(t)

		require.NoError(t, repo.UpdateStatus(ctx, 2, models.StatusApproved))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Listing{
			{ID: 1, Car: "Toyota Corolla", Status: models.StatusPending},
			{ID: 2, Car: "Honda Civic", Status: models.StatusApproved},
			{ID: 3, Car: "Ford Focus", Status: models.StatusPending},
		}, all)
	})

	t.Run("UpdateStatus stores any string", func(t *testing.T) {
		repo := newRepo(t)

		require.NoError(t, repo.UpdateStatus(ctx, 1, models.Status("on-hold")))

		l, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, models.Status("on-hold"), l.Status)
	})

	t.Run("UpdateCar", func(t *testing.T) {
		repo := newRepo(t)

		require.NoError(t, repo.UpdateCar(ctx, 3, "Ford Focus 2024"))

		l, err := repo.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "Ford Focus 2024", l.Car)
		assert.Equal(t, models.StatusPending, l.Status)

		other, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Toyota Corolla", other.Car)
	})

	t.Run("updates on missing id leave store unchanged", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.UpdateStatus(ctx, 42, models.StatusRejected)
		assert.True(t, errors.Is(err, common.ErrNotFound), "got %v", err)

		err = repo.UpdateCar(ctx, 42, "Ghost")
		assert.True(t, errors.Is(err, common.ErrNotFound), "got %v", err)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.SeedListings(), all)
	})

	t.Run("GetAll result is detached from the store", func(t *testing.T) {
		repo := newRepo(t)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		all[0].Car = "mutated"

		l, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Toyota Corolla", l.Car)
	})
}

// SessionRepositoryTests runs the session store contract against an empty store.
func SessionRepositoryTests(t *testing.T, newRepo func(t *testing.T) repository.SessionRepository) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Create and GetByID", func(t *testing.T) {
		repo := newRepo(t)

		s := &models.Session{ID: "abc", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
		require.NoError(t, repo.Create(ctx, s))

		got, err := repo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", got.ID)
		assert.True(t, got.ExpiresAt.Equal(s.ExpiresAt), "expires_at %v != %v", got.ExpiresAt, s.ExpiresAt)
	})

	t.Run("GetByID missing", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(ctx, "nope")
		assert.True(t, errors.Is(err, common.ErrNotFound), "got %v", err)
	})

	t.Run("Delete", func(t *testing.T) {
		repo := newRepo(t)

		require.NoError(t, repo.Create(ctx, &models.Session{ID: "gone", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}))
		require.NoError(t, repo.Delete(ctx, "gone"))
		require.NoError(t, repo.Delete(ctx, "gone"))

		_, err := repo.GetByID(ctx, "gone")
		assert.True(t, errors.Is(err, common.ErrNotFound), "got %v", err)
	})

	t.Run("DeleteExpired", func(t *testing.T) {
		repo := newRepo(t)

		require.NoError(t, repo.Create(ctx, &models.Session{ID: "old", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}))
		require.NoError(t, repo.Create(ctx, &models.Session{ID: "fresh", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}))

		n, err := repo.DeleteExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, err = repo.GetByID(ctx, "old")
		assert.True(t, errors.Is(err, common.ErrNotFound))

		_, err = repo.GetByID(ctx, "fresh")
		assert.NoError(t, err)
	})
}
