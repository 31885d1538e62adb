package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"listingadmin/internal/common"
	"listingadmin/internal/models"

	"github.com/jmoiron/sqlx"
)

type ListingRepository struct {
	db *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) GetAll(ctx context.Context) ([]models.Listing, error) {
	query := `SELECT id, car, status FROM listings ORDER BY id`

	listings := []models.Listing{}
	if err := r.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return listings, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*models.Listing, error) {
	query := `SELECT id, car, status FROM listings WHERE id = $1`

	var l models.Listing
	err := r.db.GetContext(ctx, &l, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("listing %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &l, nil
}

func (r *ListingRepository) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	return r.update(ctx, id, `UPDATE listings SET status = $1 WHERE id = $2`, string(status), id)
}

func (r *ListingRepository) UpdateCar(ctx context.Context, id int64, car string) error {
	return r.update(ctx, id, `UPDATE listings SET car = $1 WHERE id = $2`, car, id)
}

func (r *ListingRepository) update(ctx context.Context, id int64, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("listing %d: %w", id, common.ErrNotFound)
	}
	return nil
}
