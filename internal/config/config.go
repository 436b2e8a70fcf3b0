package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite3"
)

// Config holds all configuration for the registry CLI
type Config struct {
	// Database connection settings
	Database DatabaseConfig `mapstructure:",squash"`

	// Logging
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// DatabaseConfig holds database connection settings.
// Host, port, user and password are not needed by the sqlite3 driver,
// where Name is the database file path.
type DatabaseConfig struct {
	Driver   string `mapstructure:"db_driver" env:"DB_DRIVER" validate:"oneof=postgres mysql sqlite3"`
	Host     string `mapstructure:"db_host" env:"DB_HOST" validate:"required_unless=Driver sqlite3"`
	Port     int    `mapstructure:"db_port" env:"DB_PORT" validate:"required_unless=Driver sqlite3,max=65535"`
	Name     string `mapstructure:"db_name" env:"DB_NAME" validate:"required"`
	User     string `mapstructure:"db_user" env:"DB_USER" validate:"required_unless=Driver sqlite3"`
	Password string `mapstructure:"db_password" env:"DB_PASSWORD" validate:"required_unless=Driver sqlite3"`
	SSLMode  string `mapstructure:"db_sslmode" env:"DB_SSLMODE"`
}

// keys lists every setting read from the environment or the .env file
var keys = []string{
	"db_driver", "db_host", "db_port", "db_name", "db_user", "db_password", "db_sslmode",
	"log_file", "log_level",
}

// NewViper returns a viper instance bound to the environment. When envFile
// exists it is read as a dotenv file; real environment variables take precedence.
func NewViper(envFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("log_file", "app.log")
	v.SetDefault("log_level", "debug")

	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", strings.ToUpper(key), err)
		}
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
		}
	}

	return v, nil
}

// Load reads configuration from viper into a Config struct and validates it
func Load(v *viper.Viper) (Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Database.Driver = strings.ToLower(cfg.Database.Driver)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their environment variable name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	var errs []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "required_unless":
			errs = append(errs, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			errs = append(errs, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		case "max":
			errs = append(errs, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		default:
			errs = append(errs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
}
