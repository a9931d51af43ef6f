// Package sqlite implements the relational store behind the taco, order,
// ingredient, and user repositories.
package sqlite

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/tacocloud/tacocloud/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Config captures the settings for opening the SQLite database.
type Config struct {
	// Path is the database file, or ":memory:" for an in-process database.
	Path    string
	Timeout time.Duration
}

// Connect opens the database, enables foreign keys, and validates
// connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	if cfg.Path == ":memory:" {
		// Each pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	return db, nil
}

// Migrate applies all pending schema migrations, including the ingredient
// catalog seed. Running against an up-to-date database is a no-op.
func Migrate(db *sqlx.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	drv, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", drv)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// storeErr maps driver failures onto the domain error taxonomy: constraint
// violations become ErrPersistenceRejected, everything else is treated as the
// storage being unavailable.
func storeErr(err error) error {
	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceRejected, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}
