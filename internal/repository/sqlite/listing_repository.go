package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"listingadmin/internal/common"
	"listingadmin/internal/models"
)

// ListingRepository implements repository.ListingRepository for SQLite.
type ListingRepository struct {
	db *DB
}

// NewListingRepository creates a new SQLite listing repository.
func NewListingRepository(db *DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// GetAll retrieves every listing ordered by id.
func (r *ListingRepository) GetAll(ctx context.Context) ([]models.Listing, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	listings := []models.Listing{}
	if err := r.db.Conn().SelectContext(ctx, &listings, `SELECT id, car, status FROM listings ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	return listings, nil
}

// GetByID retrieves a listing by its ID.
func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*models.Listing, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	var l models.Listing
	err := r.db.Conn().GetContext(ctx, &l, `SELECT id, car, status FROM listings WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("listing %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &l, nil
}

// UpdateStatus sets the moderation status of a listing.
func (r *ListingRepository) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	return r.exec(ctx, id, `UPDATE listings SET status = ? WHERE id = ?`, string(status), id)
}

// UpdateCar sets the car name of a listing.
func (r *ListingRepository) UpdateCar(ctx context.Context, id int64, car string) error {
	return r.exec(ctx, id, `UPDATE listings SET car = ? WHERE id = ?`, car, id)
}

func (r *ListingRepository) exec(ctx context.Context, id int64, query string, args ...any) error {
	r.db.Lock()
	defer r.db.Unlock()

	result, err := r.db.Conn().ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("listing %d: %w", id, common.ErrNotFound)
	}
	return nil
}
