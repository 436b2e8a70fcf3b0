package registry

import "time"

// Comparison holds search timings measured before and after the secondary
// index was created. The benchmark workflow is three separate calls:
// SearchEmployees, CreateIndexes, SearchEmployees.
type Comparison struct {
	Before time.Duration
	After  time.Duration
}

// Improvement returns ((before - after) / before) * 100. A zero Before
// yields 0 rather than dividing by zero.
func (c Comparison) Improvement() float64 {
	if c.Before <= 0 {
		return 0
	}
	return float64(c.Before-c.After) / float64(c.Before) * 100
}
