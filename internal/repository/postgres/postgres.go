// Package postgres implements the listing and session stores on PostgreSQL
// through the pgx stdlib driver. It is the backend to use when several
// instances share state.
package postgres

import (
	"context"
	"fmt"

	"listingadmin/internal/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// Open connects to dsn, checks the connection and applies migrations.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if _, err := migrations.Up(ctx, db.DB, "postgres"); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return db, nil
}
