// Package database provides the connection provider and SQL operations for
// the employee registry.
//
// FILE: queries_employee.go
// PURPOSE: Employee persistence and reads.
//
// KEY FUNCTIONS:
// - InsertEmployee: Single-row insert of a validated employee
// - BulkInsertEmployees: Multi-row batched insert inside one transaction
// - ListEmployees: Distinct employees ordered by name, timed over query execution
// - SearchEmployees: Benchmark query, timed over query and full fetch
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/willfong/employee-registry/internal/config"
	"github.com/willfong/employee-registry/internal/models"
)

const employeeColumns = 3

const listEmployeesSQL = `
		SELECT DISTINCT full_name, birth_date, gender
		FROM employees
		ORDER BY full_name`

const searchEmployeesSQL = `
		SELECT DISTINCT full_name, birth_date, gender
		FROM employees
		WHERE gender = '` + config.SearchGender + `' AND full_name LIKE '` + config.SearchNamePrefix + `%'
		ORDER BY full_name`

// InsertEmployee persists one employee with a single INSERT and sets e.ID
// to the generated key
func (q *Queries) InsertEmployee(ctx context.Context, e *models.Employee) error {
	dialect := q.pool.Dialect()
	query := "INSERT INTO employees (full_name, birth_date, gender) VALUES " +
		dialect.ValuesList(1, employeeColumns)

	// pgx does not implement LastInsertId
	if dialect.returningID {
		id, err := q.insertReturning(ctx, query+" RETURNING id", employeeArgs(e))
		if err != nil {
			return q.fail("add employee", err, slog.String("full_name", e.FullName))
		}
		e.ID = id
		return nil
	}

	result, err := q.pool.ExecContext(ctx, query, employeeArgs(e)...)
	if err != nil {
		return q.fail("add employee", err, slog.String("full_name", e.FullName))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return q.fail("add employee", err, slog.String("full_name", e.FullName))
	}
	e.ID = id
	return nil
}

func (q *Queries) insertReturning(ctx context.Context, query string, args []any) (int64, error) {
	rows, err := q.pool.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var id int64
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("insert returned no id")
	}
	if err := rows.Scan(&id); err != nil {
		return 0, err
	}
	return id, rows.Err()
}

// BulkInsertEmployees inserts employees with multi-row INSERT statements of
// at most pageSize rows each. All statements share one transaction, so a
// single failure leaves nothing behind. It returns the number of statements
// sent to the server.
func (q *Queries) BulkInsertEmployees(ctx context.Context, employees []models.Employee, pageSize int) (int, error) {
	if len(employees) == 0 {
		return 0, nil
	}
	if pageSize <= 0 {
		pageSize = config.BulkPageSize
	}

	statements := 0
	err := q.pool.WithTx(ctx, func(tx Execer) error {
		for start := 0; start < len(employees); start += pageSize {
			end := min(start+pageSize, len(employees))
			page := employees[start:end]

			query := "INSERT INTO employees (full_name, birth_date, gender) VALUES " +
				q.pool.Dialect().ValuesList(len(page), employeeColumns)

			args := make([]any, 0, len(page)*employeeColumns)
			for i := range page {
				args = append(args, employeeArgs(&page[i])...)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("page at offset %d: %w", start, err)
			}
			statements++
		}
		return nil
	})
	if err != nil {
		return 0, q.fail("bulk insert employees", err, slog.Int("count", len(employees)))
	}

	return statements, nil
}

// ListEmployees returns distinct employees ordered by full name. The
// duration covers query execution only, not fetching the rows.
func (q *Queries) ListEmployees(ctx context.Context) ([]models.Employee, time.Duration, error) {
	start := time.Now()
	rows, err := q.pool.QueryContext(ctx, listEmployeesSQL)
	elapsed := time.Since(start)
	if err != nil {
		return nil, 0, q.fail("list employees", err)
	}
	defer rows.Close()

	employees, err := scanEmployees(rows)
	if err != nil {
		return nil, 0, q.fail("list employees", err)
	}
	return employees, elapsed, nil
}

// SearchEmployees returns distinct Male employees whose full name starts
// with F, ordered by full name. The duration runs from just before the
// query is issued until the full result set has been retrieved.
func (q *Queries) SearchEmployees(ctx context.Context) ([]models.Employee, time.Duration, error) {
	start := time.Now()
	rows, err := q.pool.QueryContext(ctx, searchEmployeesSQL)
	if err != nil {
		return nil, 0, q.fail("search employees", err)
	}
	defer rows.Close()

	employees, err := scanEmployees(rows)
	elapsed := time.Since(start)
	if err != nil {
		return nil, 0, q.fail("search employees", err)
	}
	return employees, elapsed, nil
}

func employeeArgs(e *models.Employee) []any {
	return []any{e.FullName, e.BirthDateString(), string(e.Gender)}
}
