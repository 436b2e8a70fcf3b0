// Package database provides the connection provider and SQL operations for
// the employee registry.
//
// FILE: scanners.go
// PURPOSE: Row scanning helpers converting result rows to employees. Drivers
// disagree on how a DATE column arrives (time.Time, string or []byte), so
// birth dates go through dateValue.
package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/willfong/employee-registry/internal/models"
)

// dateValue scans a DATE column regardless of the driver's representation
type dateValue struct {
	time.Time
}

func (d *dateValue) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		return fmt.Errorf("birth_date is NULL")
	default:
		return fmt.Errorf("unsupported birth_date type %T", src)
	}
}

func (d *dateValue) parse(s string) error {
	// Some drivers append a time part to DATE values
	if len(s) > len(models.DateLayout) {
		s = s[:len(models.DateLayout)]
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid birth_date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// scanEmployees reads every (full_name, birth_date, gender) row
func scanEmployees(rows *sql.Rows) ([]models.Employee, error) {
	var employees []models.Employee
	for rows.Next() {
		var (
			e      models.Employee
			date   dateValue
			gender string
		)
		if err := rows.Scan(&e.FullName, &date, &gender); err != nil {
			return nil, err
		}
		e.BirthDate = date.Time
		e.Gender = models.Gender(gender)
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
