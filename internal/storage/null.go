// ABOUTME: Helpers for nullable columns and row scanning.
// ABOUTME: Shared by every entity file in the storage package.
package storage

import (
	"context"
	"database/sql"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// nullStringPtr converts a sql.NullString to a pointer (nil if not valid)
func nullStringPtr(n sql.NullString) *string {
	if n.Valid {
		return &n.String
	}
	return nil
}

// nullStringValue converts a sql.NullString to a string (empty if not valid)
func nullStringValue(n sql.NullString) string {
	if n.Valid {
		return n.String
	}
	return ""
}

// ptrArg turns an optional string into a bind argument, nil becoming NULL.
func ptrArg(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
