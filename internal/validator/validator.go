// Package validator checks and normalizes raw employee input before any
// record is built. Each check returns the normalized value or a
// *ValidationError naming the rule that was violated.
package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/willfong/employee-registry/internal/models"
)

// ValidationError reports bad user input for a single field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Reason
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Field names carried by ValidationError
const (
	FieldFullName  = "full_name"
	FieldBirthDate = "birth_date"
	FieldGender    = "gender"
)

// MinBirthYear is the earliest accepted birth year
const MinBirthYear = 1900

// DateLayouts are the accepted birth date formats, tried in order:
// DD.MM.YYYY, YYYY-MM-DD, DD/MM/YYYY, YYYY/MM/DD.
// Day and month accept one or two digits.
var DateLayouts = []string{
	"2.1.2006",
	"2006-1-2",
	"2/1/2006",
	"2006/1/2",
}

// Whitespace includes \v and Unicode separators such as NBSP
var fullNamePattern = regexp.MustCompile(`^[A-Za-z\s\v\pZ-]+$`)

// ValidateFullName requires at least a first and a last name made of
// letters, spaces and hyphens. It returns every part capitalized and joined
// by single spaces.
func ValidateFullName(raw string) (string, error) {
	if len(strings.TrimSpace(raw)) < 2 {
		return "", invalid(FieldFullName, "full name must be at least 2 characters long")
	}

	if !fullNamePattern.MatchString(raw) {
		return "", invalid(FieldFullName, "full name must contain only letters, spaces, and hyphens")
	}

	parts := strings.Fields(raw)
	if len(parts) < 2 {
		return "", invalid(FieldFullName, "full name must contain at least first name and last name")
	}

	for i, part := range parts {
		parts[i] = capitalize(part)
	}
	return strings.Join(parts, " "), nil
}

// ValidateDate is ValidateDateAt for the current time
func ValidateDate(raw string) (string, error) {
	return ValidateDateAt(raw, time.Now())
}

// ValidateDateAt parses raw with the first matching layout in DateLayouts
// and returns it as YYYY-MM-DD. Dates after the calendar day of now and
// years before 1900 are rejected.
func ValidateDateAt(raw string, now time.Time) (string, error) {
	if raw == "" {
		return "", invalid(FieldBirthDate, "birth date cannot be empty")
	}

	for _, layout := range DateLayouts {
		date, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}

		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if date.After(today) {
			return "", invalid(FieldBirthDate, "birth date cannot be in the future")
		}
		if date.Year() < MinBirthYear {
			return "", invalid(FieldBirthDate, "birth date cannot be earlier than 1900")
		}

		return date.Format(models.DateLayout), nil
	}

	return "", invalid(FieldBirthDate,
		"invalid date format, supported formats are: DD.MM.YYYY, YYYY-MM-DD, DD/MM/YYYY, YYYY/MM/DD")
}

// ValidateGender accepts male or female in any letter case
func ValidateGender(raw string) (models.Gender, error) {
	if raw == "" {
		return "", invalid(FieldGender, "gender cannot be empty")
	}

	for _, g := range models.Genders {
		if strings.EqualFold(raw, string(g)) {
			return g, nil
		}
	}

	return "", invalid(FieldGender, "gender must be 'male' or 'female'")
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
