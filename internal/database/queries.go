// Package database provides the connection provider and SQL operations for
// the employee registry.
//
// FILE: queries.go
// PURPOSE: Base Queries struct and constructor. Queries runs statements over
// one open Pool and is discarded together with it.
//
// RELATED FILES:
// - pool.go: Connector and Pool (per-call connection, query metrics)
// - dialect.go: Placeholder, DDL and DSN differences between drivers
// - schema.go: Table and index creation
// - queries_employee.go: Employee insert, bulk insert, list and search
// - scanners.go: Row scanning helper functions
package database

import "log/slog"

// Queries provides database operations over a single connection
type Queries struct {
	pool   *Pool
	logger *slog.Logger
}

// NewQueries creates a new Queries instance
func NewQueries(pool *Pool, logger *slog.Logger) *Queries {
	if logger == nil {
		logger = slog.Default()
	}
	return &Queries{pool: pool, logger: logger}
}

// fail logs a failed statement with its context and wraps it for callers
func (q *Queries) fail(op string, err error, attrs ...any) error {
	attrs = append(attrs, slog.Any("error", err))
	q.logger.Error("error trying to "+op, attrs...)
	return &PersistenceError{Op: op, Err: err}
}
