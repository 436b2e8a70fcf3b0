package models

import (
	"time"
)

// DateLayout is the canonical text form of a birth date
const DateLayout = "2006-01-02"

// Gender is the enumerated gender stored with every employee
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders lists every accepted value
var Genders = []Gender{GenderMale, GenderFemale}

// Employee is the single record kept by the registry.
// Persisted employees are never updated or deleted.
type Employee struct {
	// Surrogate key, set by InsertEmployee. Zero for rows read through a
	// DISTINCT query and for bulk inserts.
	ID int64 `db:"id" json:"id,omitempty"`

	FullName  string    `db:"full_name" json:"full_name"`
	BirthDate time.Time `db:"birth_date" json:"birth_date"` // date only
	Gender    Gender    `db:"gender" json:"gender"`
}

// NewEmployee builds an employee from already validated values.
// birthDate must be in DateLayout form.
func NewEmployee(fullName, birthDate string, gender Gender) (Employee, error) {
	date, err := time.Parse(DateLayout, birthDate)
	if err != nil {
		return Employee{}, err
	}
	return Employee{
		FullName:  fullName,
		BirthDate: date,
		Gender:    gender,
	}, nil
}

// BirthDateString returns the birth date as YYYY-MM-DD
func (e Employee) BirthDateString() string {
	return e.BirthDate.Format(DateLayout)
}

// AgeAt returns the age in whole years on the calendar date of now.
// The count drops by one until the birthday has been reached that year.
func (e Employee) AgeAt(now time.Time) int {
	age := now.Year() - e.BirthDate.Year()
	if now.Month() < e.BirthDate.Month() ||
		(now.Month() == e.BirthDate.Month() && now.Day() < e.BirthDate.Day()) {
		age--
	}
	return age
}

// Key identifies the (name, date, gender) tuple that list and search
// deduplicate on
func (e Employee) Key() string {
	return e.FullName + "|" + e.BirthDateString() + "|" + string(e.Gender)
}
