// Package repository implements the service persistence interfaces over
// the generated ent client, plus the raw-SQL escape hatches that need
// Postgres semantics ent cannot express.
package repository

import (
	"context"
	"database/sql"
	"time"
)

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nilIfEmpty maps the domain's ""-means-absent convention onto nullable
// columns.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func copyTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// sqlExecutor is the slice of *sql.DB the raw-SQL paths use; tests swap
// in sqlmock.
type sqlExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
