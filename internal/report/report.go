// Package report renders employees and search/benchmark results as plain
// text lines.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/willfong/employee-registry/internal/models"
	"github.com/willfong/employee-registry/internal/registry"
)

// EmployeeLine formats one employee with the age derived at now
func EmployeeLine(e models.Employee, now time.Time) string {
	return fmt.Sprintf("Name: %s, Birth Date: %s, Gender: %s, Age: %d",
		e.FullName, e.BirthDateString(), e.Gender, e.AgeAt(now))
}

// Employees writes one line per employee
func Employees(w io.Writer, employees []models.Employee, now time.Time) error {
	for _, e := range employees {
		if _, err := fmt.Fprintln(w, EmployeeLine(e, now)); err != nil {
			return err
		}
	}
	return nil
}

// SearchResults writes the employees followed by a count line and an
// elapsed-time line
func SearchResults(w io.Writer, employees []models.Employee, elapsed time.Duration, now time.Time) error {
	if err := Employees(w, employees, now); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nFound %d employees\n\nQuery execution time: %s seconds\n",
		len(employees), Seconds(elapsed))
	return err
}

// Comparison writes both benchmark timings and the improvement percentage
func Comparison(w io.Writer, c registry.Comparison) error {
	_, err := fmt.Fprintf(w,
		"\nTime after optimization: %s seconds\n\nTime before optimization: %s seconds\n\nOptimization improvement: %.4f%%\n",
		Seconds(c.After), Seconds(c.Before), c.Improvement())
	return err
}

// Seconds formats a duration as seconds with four decimals
func Seconds(d time.Duration) string {
	return fmt.Sprintf("%.4f", d.Seconds())
}
