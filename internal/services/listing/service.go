// Package listing implements the moderation operations on top of a
// ListingRepository, plus the dashboard filter and counters.
package listing

import (
	"context"
	"fmt"
	"strings"

	"listingadmin/internal/common"
	"listingadmin/internal/models"
	"listingadmin/internal/repository"
)

type Service struct {
	repo repository.ListingRepository
}

func NewService(repo repository.ListingRepository) *Service {
	return &Service{repo: repo}
}

// List returns every listing in id order.
func (s *Service) List(ctx context.Context) ([]models.Listing, error) {
	return s.repo.GetAll(ctx)
}

// Get returns one listing or common.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*models.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

// SetStatus moves a listing to one of the known moderation states.
func (s *Service) SetStatus(ctx context.Context, id int64, status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q: %w", status, common.ErrValidation)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Rename sets the car name. Surrounding whitespace is dropped and the
// result must not be empty.
func (s *Service) Rename(ctx context.Context, id int64, car string) error {
	car = strings.TrimSpace(car)
	if car == "" {
		return fmt.Errorf("car name is required: %w", common.ErrValidation)
	}
	return s.repo.UpdateCar(ctx, id, car)
}
