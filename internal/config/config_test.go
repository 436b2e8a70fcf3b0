package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var envKeys = []string{
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE",
	"LOG_FILE", "LOG_LEVEL",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func load(t *testing.T, envFile string) (Config, error) {
	t.Helper()
	v, err := NewViper(envFile)
	if err != nil {
		t.Fatalf("NewViper returned error: %v", err)
	}
	return Load(v)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "registry")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := load(t, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Expected default driver postgres, got %s", cfg.Database.Driver)
	}
	if cfg.Database.Host != "db.local" || cfg.Database.Port != 5432 {
		t.Errorf("Unexpected address %s:%d", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.LogFile != "app.log" {
		t.Errorf("Expected log file app.log, got %s", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
}

func TestLoad_MissingKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.local")

	_, err := load(t, "")
	if err == nil {
		t.Fatal("Expected an error for missing settings")
	}

	msg := err.Error()
	for _, key := range []string{"DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD"} {
		if !strings.Contains(msg, key+" is required") {
			t.Errorf("Expected %s in %q", key, msg)
		}
	}
	if strings.Contains(msg, "DB_HOST") {
		t.Errorf("Did not expect DB_HOST in %q", msg)
	}
	if strings.Contains(msg, "\n") {
		t.Errorf("Expected a single line, got %q", msg)
	}
}

func TestLoad_SQLiteNeedsOnlyName(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "SQLite3")
	t.Setenv("DB_NAME", "/tmp/registry.db")

	cfg, err := load(t, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("Expected driver sqlite3, got %s", cfg.Database.Driver)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "oracle")
	t.Setenv("DB_NAME", "registry")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := load(t, "")
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !strings.Contains(err.Error(), "DB_DRIVER must be one of") {
		t.Errorf("Expected driver error, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "LOG_LEVEL must be one of") {
		t.Errorf("Expected log level error, got %q", err.Error())
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "DB_HOST=file-host\nDB_PORT=3306\nDB_NAME=registry\nDB_USER=app\nDB_PASSWORD=secret\nDB_DRIVER=mysql\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("writing env file failed: %v", err)
	}

	// Real environment wins over the file
	t.Setenv("DB_HOST", "env-host")

	cfg, err := load(t, envFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Database.Host != "env-host" {
		t.Errorf("Expected env-host, got %s", cfg.Database.Host)
	}
	if cfg.Database.Driver != DriverMySQL || cfg.Database.Port != 3306 {
		t.Errorf("Expected mysql on 3306, got %s on %d", cfg.Database.Driver, cfg.Database.Port)
	}
}

func TestNewViper_MissingEnvFile(t *testing.T) {
	if _, err := NewViper(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Expected a missing env file to be ignored, got %v", err)
	}
}
