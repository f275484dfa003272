package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Supported values for DB_DRIVER.
const (
	DriverPgx      = "pgx"      // pgxpool, native PostgreSQL protocol
	DriverPostgres = "postgres" // database/sql + lib/pq through sqlx
	DriverSQLite   = "sqlite3"  // database/sql + go-sqlite3 through sqlx
)

// Config holds the whole application configuration.
// It is populated from environment variables (optionally seeded from .env).
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	APIPrefix   string // mounted in front of every resource route, e.g. "/api"
}

type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	User        string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	MinConns    int
	SQLitePath  string
	AutoMigrate bool
}

type LogConfig struct {
	Level string
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverPgx))

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			APIPrefix:   strings.TrimRight(getEnv("API_PREFIX", ""), "/"),
		},
		Database: DatabaseConfig{
			Driver:     driver,
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnvInt("DB_PORT", 5432),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			Database:   getEnv("DB_NAME", "library"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxConns:   getEnvInt("DB_MAX_CONNS", 25),
			MinConns:   getEnvInt("DB_MIN_CONNS", 5),
			SQLitePath: getEnv("SQLITE_PATH", "library.db"),
			// sqlite databases are usually throwaway, so bootstrap them unless told otherwise
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", driver == DriverSQLite),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPgx, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s, %s or %s)",
			c.Database.Driver, DriverPgx, DriverPostgres, DriverSQLite)
	}

	if c.App.Port == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}

	if c.App.Environment == "production" && c.Database.Driver != DriverSQLite {
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

// PostgresDSN builds a lib/pq style connection string.
func (d DatabaseConfig) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

// SQLiteDSN returns the go-sqlite3 data source for SQLitePath.
func (d DatabaseConfig) SQLiteDSN() string {
	if d.SQLitePath == ":memory:" {
		return "file::memory:?cache=shared"
	}
	return "file:" + d.SQLitePath + "?cache=shared&mode=rwc&_journal_mode=WAL"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
