package generator

import (
	"time"

	"github.com/willfong/employee-registry/internal/config"
	"github.com/willfong/employee-registry/internal/models"
	"github.com/willfong/employee-registry/internal/utils"
)

// Name pools for generated employees
var (
	firstNames = []string{
		"John", "James", "Robert", "Michael", "William",
		"David", "Richard", "Charles", "Joseph", "Thomas",
	}

	middleNames = []string{
		"Alexander", "Benjamin", "Christopher", "Daniel", "Edward",
		"Frederick", "George", "Henry", "Isaac",
	}

	// Surnames are built as <letter> + suffix
	surnameSuffixes = []string{"oster", "ranks", "ord", "isher", "owler"}
)

// EmployeeGenerator creates pseudo-random employees whose values always
// fall inside the validated domain.
type EmployeeGenerator struct {
	rng      *utils.Random
	surnames []string
}

// NewEmployeeGenerator creates a new employee generator
func NewEmployeeGenerator(rng *utils.Random) *EmployeeGenerator {
	return &EmployeeGenerator{
		rng:      rng,
		surnames: buildSurnames(),
	}
}

// buildSurnames returns every A-Z letter combined with every suffix
func buildSurnames() []string {
	surnames := make([]string, 0, 26*len(surnameSuffixes))
	for letter := 'A'; letter <= 'Z'; letter++ {
		for _, suffix := range surnameSuffixes {
			surnames = append(surnames, string(letter)+suffix)
		}
	}
	return surnames
}

// Employee returns a random employee of either gender
func (g *EmployeeGenerator) Employee() models.Employee {
	gender := models.GenderFemale
	if g.rng.Bool() {
		gender = models.GenderMale
	}

	return models.Employee{
		FullName:  g.fullName(g.rng.PickString(g.surnames)),
		BirthDate: g.birthDate(),
		Gender:    gender,
	}
}

// SearchMatch returns a Male employee whose surname starts with the search
// prefix, guaranteeing a row for the search benchmark
func (g *EmployeeGenerator) SearchMatch() models.Employee {
	surname := config.SearchNamePrefix + g.rng.PickString(surnameSuffixes)

	return models.Employee{
		FullName:  g.fullName(surname),
		BirthDate: g.birthDate(),
		Gender:    models.GenderMale,
	}
}

// fullName formats "<Surname> <First> <Middle>"
func (g *EmployeeGenerator) fullName(surname string) string {
	return surname + " " + g.rng.PickString(firstNames) + " " + g.rng.PickString(middleNames)
}

func (g *EmployeeGenerator) birthDate() time.Time {
	year := g.rng.IntRange(config.BirthYearMin, config.BirthYearMax)
	month := time.Month(g.rng.IntRange(1, 12))
	day := g.rng.IntRange(1, config.BirthDayMax)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
