package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/willfong/employee-registry/internal/config"
)

// Connector opens database connections from an immutable configuration.
// Every operation gets its own connection and closes it when done; there is
// no pooling across calls.
type Connector struct {
	cfg     config.DatabaseConfig
	dialect Dialect
	logger  *slog.Logger
}

// NewConnector creates a connector for the configured driver
func NewConnector(cfg config.DatabaseConfig, logger *slog.Logger) (*Connector, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Connector{cfg: cfg, dialect: dialect, logger: logger}, nil
}

// Open establishes a single live connection and verifies it with a ping.
// Failures are returned as *ConnectionError.
func (c *Connector) Open(ctx context.Context) (*Pool, error) {
	db, err := sql.Open(c.dialect.SQLDriver, c.dialect.DSN(c.cfg))
	if err != nil {
		c.logger.Error("error connecting to database", slog.String("driver", c.cfg.Driver), slog.Any("error", err))
		return nil, &ConnectionError{Driver: c.cfg.Driver, Err: err}
	}

	// One connection, never reused after Close
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		c.logger.Error("error connecting to database", slog.String("driver", c.cfg.Driver), slog.Any("error", err))
		return nil, &ConnectionError{Driver: c.cfg.Driver, Err: err}
	}

	c.logger.Debug("database connection opened", slog.String("driver", c.cfg.Driver))
	return &Pool{db: db, dialect: c.dialect}, nil
}

// Execer is satisfied by both the pool and an open transaction
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Pool wraps a sql.DB holding one connection and records every round trip
type Pool struct {
	db      *sql.DB
	dialect Dialect

	// Metrics
	totalQueries   int64
	failedQueries  int64
	totalLatencyNs int64
}

// Close releases the connection
func (p *Pool) Close() error {
	return p.db.Close()
}

// DB returns the underlying sql.DB for direct access when needed
func (p *Pool) DB() *sql.DB {
	return p.db
}

// Dialect returns the SQL dialect of the connection
func (p *Pool) Dialect() Dialect {
	return p.dialect
}

// QueryContext executes a query and returns rows
func (p *Pool) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := p.db.QueryContext(ctx, query, args...)
	p.recordQuery(time.Since(start), err)
	return rows, err
}

// ExecContext executes a query that doesn't return rows
func (p *Pool) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	result, err := p.db.ExecContext(ctx, query, args...)
	p.recordQuery(time.Since(start), err)
	return result, err
}

// WithTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise. Statements issued through the
// Execer handed to fn are recorded like any other query.
func (p *Pool) WithTx(ctx context.Context, fn func(Execer) error) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&recordingTx{tx: tx, pool: p}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type recordingTx struct {
	tx   *sql.Tx
	pool *Pool
}

func (r *recordingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	result, err := r.tx.ExecContext(ctx, query, args...)
	r.pool.recordQuery(time.Since(start), err)
	return result, err
}

func (r *recordingTx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := r.tx.QueryContext(ctx, query, args...)
	r.pool.recordQuery(time.Since(start), err)
	return rows, err
}

// recordQuery updates internal metrics
func (p *Pool) recordQuery(duration time.Duration, err error) {
	p.totalQueries++
	p.totalLatencyNs += duration.Nanoseconds()
	if err != nil {
		p.failedQueries++
	}
}

// Stats returns query statistics for this connection
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		TotalQueries:  p.totalQueries,
		FailedQueries: p.failedQueries,
		AvgLatency:    p.averageLatency(),
	}
}

func (p *Pool) averageLatency() time.Duration {
	if p.totalQueries == 0 {
		return 0
	}
	return time.Duration(p.totalLatencyNs / p.totalQueries)
}

// PoolStats contains query statistics
type PoolStats struct {
	TotalQueries  int64
	FailedQueries int64
	AvgLatency    time.Duration
}
