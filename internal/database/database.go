// Package database provisions the SQLite file that backs DeskDev users and
// sessions.
//
// The schema lives in the embedded goose migrations (see package migrations).
// They are applied with versioning disabled: the statements are idempotent,
// so running them on every setup leaves an existing database untouched and
// keeps the file free of any bookkeeping table. Databases created by older
// provisioners are therefore accepted as they are.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/deskdev/deskdev-setup/internal/common"
	"github.com/deskdev/deskdev-setup/internal/database/migrations"
	"github.com/deskdev/deskdev-setup/internal/filex"
	"github.com/deskdev/deskdev-setup/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

const driverName = "sqlite"

// pragmas enable foreign key enforcement and wait on a locked file instead of
// failing straight away.
const pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// dsn returns path as an absolute file: URI. The path is escaped, so a '?',
// '#' or '%' in a directory name stays part of the file name instead of
// starting the query.
func dsn(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: pragmas}
	return u.String(), nil
}

// Initialize makes sure the database at path exists and carries the users
// and sessions tables. It is safe to call repeatedly.
func Initialize(ctx context.Context, path string, logger logging.Logger) error {
	db, err := Open(ctx, path, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	tables, err := Tables(ctx, db)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "database ready", "path", path, "tables", strings.Join(tables, ","))
	return nil
}

// Open creates the parent directory and the database file if needed, applies
// the schema and returns the handle. The caller owns the returned *sql.DB.
func Open(ctx context.Context, path string, logger logging.Logger) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: database path is required", common.ErrOpenDatabase)
	}

	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	name, err := dsn(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrOpenDatabase, path, err)
	}

	db, err := sql.Open(driverName, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrOpenDatabase, path, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s: %w", common.ErrOpenDatabase, path, err)
	}

	if err := Migrate(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies every embedded migration to db.
func Migrate(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	provider, err := goose.NewProvider(
		goose.DialectSQLite3,
		db,
		migrations.FS,
		goose.WithDisableVersioning(true),
		goose.WithLogger(NewGooseLogger(ctx, logger)),
		goose.WithVerbose(true),
	)
	if err != nil {
		return fmt.Errorf("%w: load migrations: %w", common.ErrSchema, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrSchema, err)
	}

	for _, r := range results {
		logger.Debug(ctx, "migration applied",
			"file", r.Source.Path,
			"version", r.Source.Version,
			"duration", r.Duration,
		)
	}
	return nil
}
