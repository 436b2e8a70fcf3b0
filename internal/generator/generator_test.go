package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/willfong/employee-registry/internal/config"
	"github.com/willfong/employee-registry/internal/models"
	"github.com/willfong/employee-registry/internal/utils"
	"github.com/willfong/employee-registry/internal/validator"
)

// recordingInserter copies every batch it receives
type recordingInserter struct {
	batches [][]models.Employee
	failAt  int
}

func (r *recordingInserter) insert(ctx context.Context, employees []models.Employee) error {
	if r.failAt > 0 && len(r.batches)+1 == r.failAt {
		return errors.New("connection reset")
	}
	batch := make([]models.Employee, len(employees))
	copy(batch, employees)
	r.batches = append(r.batches, batch)
	return nil
}

func (r *recordingInserter) all() []models.Employee {
	var out []models.Employee
	for _, b := range r.batches {
		out = append(out, b...)
	}
	return out
}

func TestEmployeeGenerator_ValidDomain(t *testing.T) {
	gen := NewEmployeeGenerator(utils.NewRandom(7))

	for i := 0; i < 500; i++ {
		e := gen.Employee()

		name, err := validator.ValidateFullName(e.FullName)
		if err != nil {
			t.Fatalf("Generated name %q failed validation: %v", e.FullName, err)
		}
		if name != e.FullName {
			t.Errorf("Expected generated name %q to be normalized already, got %q", e.FullName, name)
		}
		if len(strings.Fields(e.FullName)) != 3 {
			t.Errorf("Expected three name parts, got %q", e.FullName)
		}

		year := e.BirthDate.Year()
		if year < config.BirthYearMin || year > config.BirthYearMax {
			t.Errorf("Birth year %d out of range", year)
		}
		if e.BirthDate.Day() > config.BirthDayMax {
			t.Errorf("Birth day %d out of range", e.BirthDate.Day())
		}
		if e.Gender != models.GenderMale && e.Gender != models.GenderFemale {
			t.Errorf("Unexpected gender %q", e.Gender)
		}
	}
}

func TestEmployeeGenerator_SearchMatch(t *testing.T) {
	gen := NewEmployeeGenerator(utils.NewRandom(7))

	for i := 0; i < 50; i++ {
		e := gen.SearchMatch()
		if e.Gender != models.GenderMale {
			t.Errorf("Expected Male, got %s", e.Gender)
		}
		if !strings.HasPrefix(e.FullName, config.SearchNamePrefix) {
			t.Errorf("Expected name starting with F, got %q", e.FullName)
		}
	}
}

func TestBuildSurnames(t *testing.T) {
	surnames := buildSurnames()
	if len(surnames) != 26*len(surnameSuffixes) {
		t.Errorf("Expected %d surnames, got %d", 26*len(surnameSuffixes), len(surnames))
	}
	if surnames[0] != "Aoster" {
		t.Errorf("Expected first surname Aoster, got %s", surnames[0])
	}
}

func TestPopulate_Batches(t *testing.T) {
	rec := &recordingInserter{}
	cfg := PopulateConfig{Total: 25, FlushEvery: 10, Matches: 4, Seed: 99}

	var calls []int
	summary, err := Populate(context.Background(), rec.insert, cfg, func(inserted, total int) {
		if total != 29 {
			t.Errorf("Expected total 29, got %d", total)
		}
		calls = append(calls, inserted)
	})
	if err != nil {
		t.Fatalf("Populate returned error: %v", err)
	}

	// Two full flushes, then the 5 leftovers plus the 4 matches
	var sizes []int
	for _, b := range rec.batches {
		sizes = append(sizes, len(b))
	}
	if diff := cmp.Diff([]int{10, 10, 9}, sizes); diff != "" {
		t.Errorf("Batch sizes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{10, 20, 29}, calls); diff != "" {
		t.Errorf("Progress mismatch (-want +got):\n%s", diff)
	}

	if summary.Inserted != 29 || summary.Batches != 3 {
		t.Errorf("Expected 29 rows in 3 batches, got %d in %d", summary.Inserted, summary.Batches)
	}
	if summary.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", summary.Seed)
	}

	// The matches are the last rows inserted
	all := rec.all()
	for _, e := range all[len(all)-4:] {
		if e.Gender != models.GenderMale || !strings.HasPrefix(e.FullName, "F") {
			t.Errorf("Expected a search match, got %s", e.Key())
		}
	}
}

func TestPopulate_Reproducible(t *testing.T) {
	cfg := PopulateConfig{Total: 30, FlushEvery: 7, Matches: 3, Seed: 12345}

	first := &recordingInserter{}
	if _, err := Populate(context.Background(), first.insert, cfg, nil); err != nil {
		t.Fatalf("Populate returned error: %v", err)
	}
	second := &recordingInserter{}
	if _, err := Populate(context.Background(), second.insert, cfg, nil); err != nil {
		t.Fatalf("Populate returned error: %v", err)
	}

	if diff := cmp.Diff(first.all(), second.all()); diff != "" {
		t.Errorf("Same seed produced different data (-first +second):\n%s", diff)
	}
}

func TestPopulate_InsertError(t *testing.T) {
	rec := &recordingInserter{failAt: 2}
	cfg := PopulateConfig{Total: 30, FlushEvery: 10, Matches: 1, Seed: 1}

	summary, err := Populate(context.Background(), rec.insert, cfg, nil)
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !strings.Contains(err.Error(), "batch 2") {
		t.Errorf("Expected the failing batch in the message, got %v", err)
	}
	if summary.Inserted != 10 {
		t.Errorf("Expected 10 rows before the failure, got %d", summary.Inserted)
	}
}

func TestDefaultPopulateConfig(t *testing.T) {
	cfg := DefaultPopulateConfig()
	if cfg.Total+cfg.Matches != 1_000_100 {
		t.Errorf("Expected 1,000,100 employees, got %d", cfg.Total+cfg.Matches)
	}
	if cfg.FlushEvery != 10_000 {
		t.Errorf("Expected flush every 10000, got %d", cfg.FlushEvery)
	}
}
