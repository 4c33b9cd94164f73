// ABOUTME: Tests for store initialization and reset.
// ABOUTME: Covers idempotent reopen, init failures, and schema versioning.
package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "gymtrack.db")
	ctx := context.Background()

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if _, err := db.SeedIfEmpty(ctx, DefaultSeed()); err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}
	_ = db.Close()

	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer db.Close()

	counts, err := db.CountRows(ctx)
	if err != nil {
		t.Fatalf("CountRows failed: %v", err)
	}
	if counts.Exercises != 16 {
		t.Errorf("expected data to survive reopen, got %+v", counts)
	}

	version, err := db.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("schema version = %d, want 1", version)
	}
}

func TestOpenFilePermissions(t *testing.T) {
	db := setupTestDB(t)

	info, err := os.Stat(db.Path())
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions = %o, want 600", perm)
	}
}

func TestOpenCorruptFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "gymtrack.db")
	garbage := make([]byte, 8192)
	for i := range garbage {
		garbage[i] = byte(i % 251)
	}
	if err := os.WriteFile(dbPath, garbage, 0600); err != nil {
		t.Fatalf("write garbage: %v", err)
	}

	_, err := Open(dbPath)
	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected *InitError, got %v", err)
	}
	if initErr.Path != dbPath {
		t.Errorf("InitError.Path = %s, want %s", initErr.Path, dbPath)
	}

	if err := Reset(dbPath); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open after Reset failed: %v", err)
	}
	_ = db.Close()
}

func TestOpenUnwritableDirectory(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(parent, []byte("x"), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	// A regular file in place of the data directory.
	_, err := Open(filepath.Join(parent, "gymtrack.db"))
	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected *InitError, got %v", err)
	}
}

func TestResetMissingFiles(t *testing.T) {
	if err := Reset(filepath.Join(t.TempDir(), "absent.db")); err != nil {
		t.Errorf("Reset of missing files should succeed, got %v", err)
	}
}

func TestDefaultDBPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	if got := DefaultDBPath(); got != "/tmp/xdg-data/gymtrack/gymtrack.db" {
		t.Errorf("DefaultDBPath = %s", got)
	}
}

func TestOptimize(t *testing.T) {
	db := setupSeededDB(t)
	if err := db.Optimize(context.Background()); err != nil {
		t.Errorf("Optimize failed: %v", err)
	}
}
