// Package config contains runtime configuration and compile-time defaults
// for the employee registry. Edit the constants and recompile to tune behavior.
package config

// =============================================================================
// BULK INSERT
// =============================================================================

const (
	// BulkPageSize is the maximum number of rows sent in one INSERT statement
	BulkPageSize = 1000
)

// =============================================================================
// TEST DATA GENERATION
// =============================================================================

const (
	// GenerateTotal is how many random employees the first phase produces
	GenerateTotal = 1_000_000

	// GenerateFlushEvery is how many employees are buffered before a bulk insert
	GenerateFlushEvery = 10_000

	// GenerateMatches is how many Male employees with an F surname are appended
	// so the search benchmark always has rows to return
	GenerateMatches = 100
)

// Birth date bounds for generated employees
const (
	BirthYearMin = 1950
	BirthYearMax = 2005

	// BirthDayMax stays at 28 to avoid month-length edge cases
	BirthDayMax = 28
)

// =============================================================================
// SEARCH BENCHMARK
// =============================================================================

const (
	// SearchGender and SearchNamePrefix define the benchmark query filter
	SearchGender     = "Male"
	SearchNamePrefix = "F"

	// IndexName is the secondary index on (gender, full_name)
	IndexName = "idx_gender_name"
)
