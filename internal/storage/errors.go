// ABOUTME: Error taxonomy for the gym store.
// ABOUTME: Init failures are fatal, not-found and foreign key errors are for callers to handle.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrForeignKey is returned when a write references a row that does not exist.
	ErrForeignKey = errors.New("foreign key violation")
)

// InitError reports that the store could not be created or opened. The
// caller has no recovery path other than Reset and a fresh Open.
type InitError struct {
	Path string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initialize store %s: %v", e.Path, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a missing row.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d: not found", e.Entity, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// writeErr wraps an insert or update failure, surfacing constraint
// violations on foreign keys as ErrForeignKey.
func writeErr(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrForeignKey, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isForeignKeyViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	if se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	// Primary result codes only carry SQLITE_CONSTRAINT.
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(se.Error(), "FOREIGN KEY constraint failed")
}
