// Package registry is the data access service of the employee registry. It
// validates input, opens a connection per operation and runs the employee
// queries, timing the reads used by the search benchmark.
package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/willfong/employee-registry/internal/config"
	"github.com/willfong/employee-registry/internal/database"
	"github.com/willfong/employee-registry/internal/generator"
	"github.com/willfong/employee-registry/internal/models"
	"github.com/willfong/employee-registry/internal/validator"
)

// Opener opens one live database connection
type Opener interface {
	Open(ctx context.Context) (*database.Pool, error)
}

// Service orchestrates validated inserts, bulk loads, listing and search
type Service struct {
	opener   Opener
	logger   *slog.Logger
	pageSize int
}

// NewService creates a new registry service
func NewService(opener Opener, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		opener:   opener,
		logger:   logger,
		pageSize: config.BulkPageSize,
	}
}

// ListResult holds the list output. Elapsed covers query execution only.
type ListResult struct {
	Employees []models.Employee
	Elapsed   time.Duration
}

// SearchResult holds the search output. Elapsed covers query execution and
// fetching of the complete result set.
type SearchResult struct {
	Employees []models.Employee
	Elapsed   time.Duration
}

// BulkResult reports a finished bulk insert
type BulkResult struct {
	Rows       int
	Statements int
}

// withQueries opens a connection, runs fn and closes the connection
func (s *Service) withQueries(ctx context.Context, fn func(*database.Queries) error) error {
	pool, err := s.opener.Open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		stats := pool.Stats()
		s.logger.Debug("closing database connection",
			slog.Int64("queries", stats.TotalQueries),
			slog.Int64("failed", stats.FailedQueries),
			slog.Duration("avg_latency", stats.AvgLatency))
		pool.Close()
	}()

	return fn(database.NewQueries(pool, s.logger))
}

// CreateSchema creates the employees table if needed
func (s *Service) CreateSchema(ctx context.Context) error {
	return s.withQueries(ctx, func(q *database.Queries) error {
		return q.CreateTables(ctx)
	})
}

// CreateIndexes creates the (gender, full_name) index if needed
func (s *Service) CreateIndexes(ctx context.Context) error {
	return s.withQueries(ctx, func(q *database.Queries) error {
		return q.CreateIndexes(ctx)
	})
}

// AddEmployee validates the raw fields, then persists and returns the
// normalized employee. Validation failures come back as
// *validator.ValidationError before any connection is opened.
func (s *Service) AddEmployee(ctx context.Context, fullName, birthDate, gender string) (*models.Employee, error) {
	name, err := validator.ValidateFullName(fullName)
	if err != nil {
		return nil, s.rejected(err, fullName)
	}
	date, err := validator.ValidateDate(birthDate)
	if err != nil {
		return nil, s.rejected(err, fullName)
	}
	g, err := validator.ValidateGender(gender)
	if err != nil {
		return nil, s.rejected(err, fullName)
	}

	emp, err := models.NewEmployee(name, date, g)
	if err != nil {
		return nil, err
	}

	err = s.withQueries(ctx, func(q *database.Queries) error {
		return q.InsertEmployee(ctx, &emp)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("employee added successfully", slog.String("full_name", emp.FullName))
	return &emp, nil
}

func (s *Service) rejected(err error, fullName string) error {
	s.logger.Warn("validation error adding employee",
		slog.String("full_name", fullName), slog.Any("error", err))
	return err
}

// ListEmployees returns distinct employees ordered by full name
func (s *Service) ListEmployees(ctx context.Context) (*ListResult, error) {
	var result ListResult
	err := s.withQueries(ctx, func(q *database.Queries) error {
		var err error
		result.Employees, result.Elapsed, err = q.ListEmployees(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchEmployees runs the benchmark query: distinct Male employees whose
// name starts with F, ordered by full name
func (s *Service) SearchEmployees(ctx context.Context) (*SearchResult, error) {
	var result SearchResult
	err := s.withQueries(ctx, func(q *database.Queries) error {
		var err error
		result.Employees, result.Elapsed, err = q.SearchEmployees(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("search finished",
		slog.Int("rows", len(result.Employees)), slog.Duration("elapsed", result.Elapsed))
	return &result, nil
}

// BulkInsert persists employees in multi-row pages on one connection.
// A single failure aborts the whole call; nothing is reported as partially
// inserted.
func (s *Service) BulkInsert(ctx context.Context, employees []models.Employee) (BulkResult, error) {
	var result BulkResult
	err := s.withQueries(ctx, func(q *database.Queries) error {
		statements, err := q.BulkInsertEmployees(ctx, employees, s.pageSize)
		if err != nil {
			return err
		}
		result = BulkResult{Rows: len(employees), Statements: statements}
		return nil
	})
	return result, err
}

// GenerateTestData loads the default synthetic data set
// (1,000,000 random employees + 100 search matches)
func (s *Service) GenerateTestData(ctx context.Context, seed int64, progress generator.ProgressFunc) (generator.Summary, error) {
	cfg := generator.DefaultPopulateConfig()
	cfg.Seed = seed
	return s.Populate(ctx, cfg, progress)
}

// Populate loads synthetic employees with explicit volumes
func (s *Service) Populate(ctx context.Context, cfg generator.PopulateConfig, progress generator.ProgressFunc) (generator.Summary, error) {
	insert := func(ctx context.Context, employees []models.Employee) error {
		_, err := s.BulkInsert(ctx, employees)
		return err
	}

	summary, err := generator.Populate(ctx, insert, cfg, progress)
	if err != nil {
		return summary, err
	}

	s.logger.Info("test data generated",
		slog.Int("inserted", summary.Inserted),
		slog.Int("batches", summary.Batches),
		slog.Duration("duration", summary.Duration))
	return summary, nil
}
