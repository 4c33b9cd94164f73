// ABOUTME: Shared helpers for storage tests.
// ABOUTME: Each test gets its own database file under t.TempDir.
package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "gymtrack.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// setupSeededDB opens a test database loaded with DefaultSeed.
func setupSeededDB(t *testing.T) *DB {
	t.Helper()

	db := setupTestDB(t)
	if _, err := db.SeedIfEmpty(context.Background(), DefaultSeed()); err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}
	return db
}
