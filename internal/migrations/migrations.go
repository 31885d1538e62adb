// Package migrations embeds the SQL schema for every SQL store driver and
// applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// dialects maps a store driver name to its goose dialect and migration directory.
var dialects = map[string]struct {
	dialect goose.Dialect
	dir     string
}{
	"sqlite":   {goose.DialectSQLite3, "sqlite"},
	"postgres": {goose.DialectPostgres, "postgres"},
}

// Up applies all pending migrations for driver and returns how many ran.
func Up(ctx context.Context, db *sql.DB, driver string) (int, error) {
	p, err := newProvider(db, driver)
	if err != nil {
		return 0, err
	}

	results, err := p.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}

// Version reports the current schema version for driver.
func Version(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	p, err := newProvider(db, driver)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}

func newProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}

	sub, err := fs.Sub(files, d.dir)
	if err != nil {
		return nil, err
	}

	return goose.NewProvider(d.dialect, db, sub)
}
