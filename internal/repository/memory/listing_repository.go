// Package memory keeps listings and sessions in process memory. State is
// lost on restart; it is the default store and the fake used in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"listingadmin/internal/common"
	"listingadmin/internal/models"
)

// ListingRepository implements repository.ListingRepository over a slice
// kept in insertion order.
type ListingRepository struct {
	mu       sync.RWMutex
	listings []models.Listing
}

// NewListingRepository creates a store holding a copy of seed.
func NewListingRepository(seed []models.Listing) *ListingRepository {
	listings := make([]models.Listing, len(seed))
	copy(listings, seed)
	return &ListingRepository{listings: listings}
}

// GetAll returns a copy of every listing.
func (r *ListingRepository) GetAll(ctx context.Context) ([]models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Listing, len(r.listings))
	copy(out, r.listings)
	return out, nil
}

// GetByID returns the listing with the given id.
func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("listing %d: %w", id, common.ErrNotFound)
	}
	l := r.listings[i]
	return &l, nil
}

// UpdateStatus stores status verbatim.
func (r *ListingRepository) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	return r.update(id, func(l *models.Listing) { l.Status = status })
}

// UpdateCar replaces the car name.
func (r *ListingRepository) UpdateCar(ctx context.Context, id int64, car string) error {
	return r.update(id, func(l *models.Listing) { l.Car = car })
}

func (r *ListingRepository) update(id int64, apply func(l *models.Listing)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("listing %d: %w", id, common.ErrNotFound)
	}
	apply(&r.listings[i])
	return nil
}

func (r *ListingRepository) indexOf(id int64) int {
	for i := range r.listings {
		if r.listings[i].ID == id {
			return i
		}
	}
	return -1
}
