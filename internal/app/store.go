package app

import (
	"context"
	"fmt"

	"listingadmin/internal/config"
	"listingadmin/internal/models"
	"listingadmin/internal/repository"
	"listingadmin/internal/repository/memory"
	"listingadmin/internal/repository/postgres"
	"listingadmin/internal/repository/sqlite"
)

type stores struct {
	listings repository.ListingRepository
	sessions repository.SessionRepository
	close    func() error
}

// openStores builds the repositories for cfg.StoreDriver. SQL backends are
// migrated (and seeded) before they are returned.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return &stores{
			listings: memory.NewListingRepository(models.SeedListings()),
			sessions: memory.NewSessionRepository(),
			close:    func() error { return nil },
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.New(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		return &stores{
			listings: sqlite.NewListingRepository(db),
			sessions: sqlite.NewSessionRepository(db),
			close:    db.Close,
		}, nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &stores{
			listings: postgres.NewListingRepository(db),
			sessions: postgres.NewSessionRepository(db),
			close:    db.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
