// ABOUTME: SQLite database connection and lifecycle management.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// pragmas are applied to every pooled connection through the DSN.
var pragmas = []string{
	"foreign_keys(1)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
	"busy_timeout(5000)",
}

// DB wraps the SQLite database connection.
type DB struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates a SQLite database at the given path and applies
// pending schema migrations. Any failure is returned as *InitError.
func Open(dbPath string) (*DB, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, &InitError{Path: dbPath, Err: fmt.Errorf("create data directory: %w", err)}
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, &InitError{Path: dbPath, Err: fmt.Errorf("open database: %w", err)}
	}

	// Single logical writer; one connection keeps statements in issue order.
	db.SetMaxOpenConns(1)

	// Ping forces the file open and the pragmas to run, which is where a
	// corrupt or unreadable file is detected.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &InitError{Path: dbPath, Err: fmt.Errorf("connect: %w", err)}
	}

	// Set file permissions
	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, &InitError{Path: dbPath, Err: fmt.Errorf("set database permissions: %w", err)}
	}

	d := &DB{db: db, dbPath: dbPath}

	if err := d.initSchema(); err != nil {
		_ = db.Close()
		return nil, &InitError{Path: dbPath, Err: fmt.Errorf("initialize schema: %w", err)}
	}

	log.Debug().Str("path", dbPath).Msg("Database opened")
	return d, nil
}

// OpenDefault opens the database at the default XDG data path.
func OpenDefault() (*DB, error) {
	return Open(DefaultDBPath())
}

// Reset removes the database file and its WAL side files so the store can
// be initialized from scratch. Missing files are ignored.
func Reset(dbPath string) error {
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}
	return nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gymtrack")
}

// DefaultDBPath returns the default database path following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "gymtrack.db")
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.dbPath
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Transaction runs fn inside a transaction, rolling back if fn or the
// commit fails.
func (d *DB) Transaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("Failed to rollback transaction")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Optimize runs SQLite's PRAGMA optimize to refresh planner stats.
func (d *DB) Optimize(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, "PRAGMA optimize"); err != nil {
		return fmt.Errorf("optimize database: %w", err)
	}
	return nil
}

func dsn(dbPath string) string {
	q := ""
	for i, p := range pragmas {
		if i > 0 {
			q += "&"
		}
		q += "_pragma=" + p
	}
	return dbPath + "?" + q
}
