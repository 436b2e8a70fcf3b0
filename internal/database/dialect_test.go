package database

import (
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/willfong/employee-registry/internal/config"
)

func mustDialect(t *testing.T, driver string) Dialect {
	t.Helper()
	d, err := DialectFor(driver)
	if err != nil {
		t.Fatalf("DialectFor(%s) returned error: %v", driver, err)
	}
	return d
}

func TestDialect_ValuesList(t *testing.T) {
	tests := []struct {
		driver   string
		rows     int
		cols     int
		expected string
	}{
		{config.DriverPostgres, 1, 3, "($1, $2, $3)"},
		{config.DriverPostgres, 2, 3, "($1, $2, $3), ($4, $5, $6)"},
		{config.DriverMySQL, 2, 2, "(?, ?), (?, ?)"},
		{config.DriverSQLite, 1, 3, "(?, ?, ?)"},
	}

	for _, test := range tests {
		got := mustDialect(t, test.driver).ValuesList(test.rows, test.cols)
		if got != test.expected {
			t.Errorf("Expected %s for %s, got %s", test.expected, test.driver, got)
		}
	}
}

func TestDialect_SQLDriver(t *testing.T) {
	tests := map[string]string{
		config.DriverPostgres: "pgx",
		config.DriverMySQL:    "mysql",
		config.DriverSQLite:   "sqlite3",
	}
	for driver, expected := range tests {
		if got := mustDialect(t, driver).SQLDriver; got != expected {
			t.Errorf("Expected sql driver %s for %s, got %s", expected, driver, got)
		}
	}
}

func TestDialect_DSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		Name:     "registry",
		User:     "app",
		Password: "secret",
	}

	pg := mustDialect(t, config.DriverPostgres).DSN(cfg)
	expected := "host='db.local' port=5433 user='app' password='secret' dbname='registry' sslmode='disable'"
	if pg != expected {
		t.Errorf("Expected %q, got %q", expected, pg)
	}

	my := mustDialect(t, config.DriverMySQL).DSN(cfg)
	if !strings.HasPrefix(my, "app:secret@tcp(db.local:5433)/registry") {
		t.Errorf("Unexpected mysql DSN %q", my)
	}
	if !strings.Contains(my, "parseTime=true") {
		t.Errorf("Expected parseTime in mysql DSN %q", my)
	}

	cfg.Name = "/tmp/registry.db"
	if got := mustDialect(t, config.DriverSQLite).DSN(cfg); got != "/tmp/registry.db" {
		t.Errorf("Expected sqlite DSN to be the file path, got %q", got)
	}
}

func TestDialect_PostgresDSNQuoting(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
		dbName   string
	}{
		{"space in password", "app", "p w", "registry"},
		{"quote and backslash", "o'neil", `back\slash 'quoted'`, "my db"},
	}

	d := mustDialect(t, config.DriverPostgres)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := config.DatabaseConfig{
				Host:     "db.local",
				Port:     5432,
				Name:     test.dbName,
				User:     test.user,
				Password: test.password,
			}

			parsed, err := pgx.ParseConfig(d.DSN(cfg))
			if err != nil {
				t.Fatalf("ParseConfig returned error: %v", err)
			}
			if parsed.Password != test.password {
				t.Errorf("Expected password %q, got %q", test.password, parsed.Password)
			}
			if parsed.User != test.user {
				t.Errorf("Expected user %q, got %q", test.user, parsed.User)
			}
			if parsed.Database != test.dbName {
				t.Errorf("Expected database %q, got %q", test.dbName, parsed.Database)
			}
			if parsed.Host != "db.local" || parsed.Port != 5432 {
				t.Errorf("Unexpected address %s:%d", parsed.Host, parsed.Port)
			}
		})
	}
}

func TestDialect_DDL(t *testing.T) {
	my := mustDialect(t, config.DriverMySQL).CreateTablesSQL()
	if !strings.Contains(my, "AUTO_INCREMENT") || !strings.Contains(my, "VARCHAR(255)") {
		t.Errorf("Unexpected mysql DDL:\n%s", my)
	}

	pg := mustDialect(t, config.DriverPostgres).CreateTablesSQL()
	if !strings.Contains(pg, "SERIAL PRIMARY KEY") {
		t.Errorf("Unexpected postgres DDL:\n%s", pg)
	}

	idx := mustDialect(t, config.DriverSQLite).CreateIndexesSQL()
	if !strings.Contains(idx, "ON employees (gender, full_name)") {
		t.Errorf("Unexpected index DDL: %s", idx)
	}
}
