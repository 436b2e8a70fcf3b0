package database

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/willfong/employee-registry/internal/config"
)

// Dialect captures the SQL differences between the supported drivers
type Dialect struct {
	// Name is the config driver name (postgres, mysql, sqlite3)
	Name string

	// SQLDriver is the name registered with database/sql
	SQLDriver string

	// numbered placeholders ($1, $2) instead of ?
	numbered bool

	// generated keys come back through INSERT ... RETURNING
	returningID bool

	idColumn   string
	textColumn string
}

var dialects = map[string]Dialect{
	config.DriverPostgres: {
		Name:        config.DriverPostgres,
		SQLDriver:   "pgx",
		numbered:    true,
		returningID: true,
		idColumn:    "id SERIAL PRIMARY KEY",
		textColumn:  "TEXT",
	},
	config.DriverMySQL: {
		Name:      config.DriverMySQL,
		SQLDriver: "mysql",
		idColumn:  "id BIGINT AUTO_INCREMENT PRIMARY KEY",
		// TEXT cannot be indexed without a prefix length
		textColumn: "VARCHAR(255)",
	},
	config.DriverSQLite: {
		Name:       config.DriverSQLite,
		SQLDriver:  "sqlite3",
		idColumn:   "id INTEGER PRIMARY KEY AUTOINCREMENT",
		textColumn: "TEXT",
	},
}

// DialectFor returns the dialect for a configured driver name
func DialectFor(driver string) (Dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
	return d, nil
}

// Placeholder returns the bind parameter for the n-th argument (1-based)
func (d Dialect) Placeholder(n int) string {
	if d.numbered {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// ValuesList renders rows groups of cols placeholders, e.g. ($1, $2), ($3, $4)
func (d Dialect) ValuesList(rows, cols int) string {
	var sb strings.Builder
	n := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(d.Placeholder(n))
			n++
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// DSN builds the driver-specific connection string
func (d Dialect) DSN(cfg config.DatabaseConfig) string {
	switch d.Name {
	case config.DriverPostgres:
		sslMode := cfg.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			quoteKeyword(cfg.Host), cfg.Port, quoteKeyword(cfg.User), quoteKeyword(cfg.Password),
			quoteKeyword(cfg.Name), quoteKeyword(sslMode),
		)
	case config.DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		mc.DBName = cfg.Name
		// Required for scanning DATE columns into time.Time values
		mc.ParseTime = true
		return mc.FormatDSN()
	default:
		return cfg.Name
	}
}

var keywordEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quoteKeyword single-quotes a keyword/value DSN value so spaces, quotes
// and backslashes survive parsing
func quoteKeyword(v string) string {
	return "'" + keywordEscaper.Replace(v) + "'"
}
