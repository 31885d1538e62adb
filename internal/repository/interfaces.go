package repository

import (
	"context"
	"time"

	"listingadmin/internal/models"
)

// ListingRepository defines the interface for listing data operations.
// Update methods return common.ErrNotFound and leave the store unchanged
// when no listing has the given id.
type ListingRepository interface {
	// Read operations
	GetAll(ctx context.Context) ([]models.Listing, error)
	GetByID(ctx context.Context, id int64) (*models.Listing, error)

	// Update operations
	UpdateStatus(ctx context.Context, id int64, status models.Status) error
	UpdateCar(ctx context.Context, id int64, car string) error
}

// SessionRepository defines the interface for login session records.
type SessionRepository interface {
	Create(ctx context.Context, s *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
