package models

import (
	"testing"
	"time"
)

func TestNewEmployee(t *testing.T) {
	emp, err := NewEmployee("John Doe", "1990-01-15", GenderMale)
	if err != nil {
		t.Fatalf("NewEmployee returned error: %v", err)
	}

	if emp.BirthDateString() != "1990-01-15" {
		t.Errorf("Expected birth date 1990-01-15, got %s", emp.BirthDateString())
	}
	if emp.ID != 0 {
		t.Errorf("Expected zero ID before insert, got %d", emp.ID)
	}
	if emp.Key() != "John Doe|1990-01-15|Male" {
		t.Errorf("Unexpected key %q", emp.Key())
	}

	if _, err := NewEmployee("John Doe", "15.01.1990", GenderMale); err == nil {
		t.Error("Expected error for a non canonical date")
	}
}

func TestEmployee_AgeAt(t *testing.T) {
	emp, err := NewEmployee("Jane Roe", "1990-06-15", GenderFemale)
	if err != nil {
		t.Fatalf("NewEmployee returned error: %v", err)
	}

	tests := []struct {
		name     string
		now      time.Time
		expected int
	}{
		{"day before birthday", time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC), 33},
		{"on birthday", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), 34},
		{"after birthday", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 34},
		{"earlier month", time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), 33},
		{"birth day itself", time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := emp.AgeAt(test.now); got != test.expected {
				t.Errorf("Expected age %d, got %d", test.expected, got)
			}
		})
	}
}
