package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"listingadmin/internal/config"
	"listingadmin/internal/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	cfg := config.Load()

	driver := flag.String("driver", cfg.StoreDriver, "Store driver: sqlite or postgres")
	dbPath := flag.String("db", cfg.DatabasePath, "SQLite database path")
	dsn := flag.String("dsn", cfg.DatabaseURL, "Postgres connection string")
	flag.Parse()

	var (
		db  *sqlx.DB
		err error
	)
	switch *driver {
	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(*dbPath), 0755); err != nil {
			log.Fatalf("Failed to create database directory: %v", err)
		}
		fmt.Printf("Migrating SQLite database %s\n", *dbPath)
		db, err = sqlx.Open("sqlite3", *dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	case config.DriverPostgres:
		if *dsn == "" {
			log.Fatalf("-dsn or DATABASE_URL is required for postgres")
		}
		fmt.Println("Migrating Postgres database")
		db, err = sqlx.Open("pgx", *dsn)
	default:
		log.Fatalf("Nothing to migrate for driver %q (use sqlite or postgres)", *driver)
	}
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	applied, err := migrations.Up(ctx, db.DB, *driver)
	if err != nil {
		log.Fatalf("Migration failed after %d step(s): %v", applied, err)
	}

	version, err := migrations.Version(ctx, db.DB, *driver)
	if err != nil {
		log.Fatalf("Failed to read schema version: %v", err)
	}

	fmt.Printf("Applied %d migration(s), schema version %d\n", applied, version)
}
