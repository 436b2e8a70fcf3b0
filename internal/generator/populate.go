package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/willfong/employee-registry/internal/config"
	"github.com/willfong/employee-registry/internal/models"
	"github.com/willfong/employee-registry/internal/utils"
)

// InsertFunc persists one batch of employees. The slice is reused after
// the call returns and must not be retained.
type InsertFunc func(ctx context.Context, employees []models.Employee) error

// ProgressFunc is called after every flushed batch with the running count
type ProgressFunc func(inserted, total int)

// PopulateConfig holds test data volume settings
type PopulateConfig struct {
	// Random employees generated in the first phase
	Total int
	// Buffered employees per insert call
	FlushEvery int
	// Male employees with an F surname appended in the second phase
	Matches int
	// Random seed for reproducibility (0 = random)
	Seed int64
}

// DefaultPopulateConfig returns the volumes from config/defaults.go
func DefaultPopulateConfig() PopulateConfig {
	return PopulateConfig{
		Total:      config.GenerateTotal,
		FlushEvery: config.GenerateFlushEvery,
		Matches:    config.GenerateMatches,
	}
}

// Summary describes a finished population run
type Summary struct {
	Inserted int
	Batches  int
	Seed     uint64
	Duration time.Duration
}

// Populate generates cfg.Total random employees, handing them to insert
// every cfg.FlushEvery records. It then appends cfg.Matches Male employees
// with F surnames so the search benchmark has rows regardless of the random
// distribution, and inserts whatever remains buffered.
func Populate(ctx context.Context, insert InsertFunc, cfg PopulateConfig, progress ProgressFunc) (Summary, error) {
	if cfg.FlushEvery <= 0 {
		cfg.FlushEvery = config.GenerateFlushEvery
	}

	rng := utils.NewRandom(cfg.Seed)
	gen := NewEmployeeGenerator(rng)
	total := cfg.Total + cfg.Matches

	summary := Summary{Seed: rng.Seed()}
	start := time.Now()

	buffer := make([]models.Employee, 0, cfg.FlushEvery)
	flush := func() error {
		if len(buffer) == 0 {
			return nil
		}
		if err := insert(ctx, buffer); err != nil {
			return fmt.Errorf("failed to insert batch %d: %w", summary.Batches+1, err)
		}
		summary.Inserted += len(buffer)
		summary.Batches++
		if progress != nil {
			progress(summary.Inserted, total)
		}
		buffer = buffer[:0]
		return nil
	}

	for i := 0; i < cfg.Total; i++ {
		buffer = append(buffer, gen.Employee())
		if len(buffer) == cfg.FlushEvery {
			if err := flush(); err != nil {
				return summary, err
			}
		}
	}

	for i := 0; i < cfg.Matches; i++ {
		buffer = append(buffer, gen.SearchMatch())
	}

	if err := flush(); err != nil {
		return summary, err
	}

	summary.Duration = time.Since(start)
	return summary, nil
}
