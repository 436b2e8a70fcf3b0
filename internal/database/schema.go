// Package database provides the connection provider and SQL operations for
// the employee registry.
//
// FILE: schema.go
// PURPOSE: Idempotent creation of the employees table and its secondary index.
package database

import (
	"context"
	"fmt"

	"github.com/willfong/employee-registry/internal/config"
)

// CreateTablesSQL returns the employees table DDL for the dialect
func (d Dialect) CreateTablesSQL() string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS employees (
			%s,
			full_name %s NOT NULL,
			birth_date DATE NOT NULL,
			gender %s NOT NULL
		)`, d.idColumn, d.textColumn, d.textColumn)
}

// CreateIndexesSQL returns the (gender, full_name) index DDL
func (d Dialect) CreateIndexesSQL() string {
	return fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON employees (gender, full_name)`, config.IndexName)
}

// CreateTables creates the employees table if it doesn't exist
func (q *Queries) CreateTables(ctx context.Context) error {
	if _, err := q.pool.ExecContext(ctx, q.pool.Dialect().CreateTablesSQL()); err != nil {
		return q.fail("create tables", err)
	}
	q.logger.Info("tables created successfully")
	return nil
}

// CreateIndexes creates the secondary index if it doesn't exist.
// The index changes only latency, never query results.
func (q *Queries) CreateIndexes(ctx context.Context) error {
	if _, err := q.pool.ExecContext(ctx, q.pool.Dialect().CreateIndexesSQL()); err != nil {
		return q.fail("create indexes", err, "index", config.IndexName)
	}
	q.logger.Info("indexes created successfully", "index", config.IndexName)
	return nil
}
