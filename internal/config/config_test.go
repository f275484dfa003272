package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "API_PREFIX", "APP_PORT", "APP_ENV", "DB_AUTO_MIGRATE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPgx, cfg.Database.Driver)
	assert.Equal(t, "", cfg.App.APIPrefix)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestLoad_SQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite3")
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("API_PREFIX", "/api/")
	t.Setenv("DB_AUTO_MIGRATE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/api", cfg.App.APIPrefix)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "file::memory:?cache=shared", cfg.Database.SQLiteDSN())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("production without password", func(t *testing.T) {
		t.Setenv("DB_DRIVER", DriverPostgres)
		t.Setenv("APP_ENV", "production")
		t.Setenv("DB_PASSWORD", "")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_PostgresDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "lib", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=lib sslmode=disable", d.PostgresDSN())
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_RETRY_DELAY", "250ms")
	t.Setenv("DB_MAX_RETRIES", "")

	pool, err := LoadDatabaseConfig(DatabaseConfig{Host: "db", Port: 5432, MaxConns: 10, MinConns: 2})
	require.NoError(t, err)
	assert.Equal(t, "db", pool.Host)
	assert.Equal(t, int32(10), pool.MaxConns)
	assert.Equal(t, 5, pool.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, pool.RetryDelay)

	t.Setenv("DB_CONNECT_TIMEOUT", "soon")
	_, err = LoadDatabaseConfig(DatabaseConfig{})
	assert.Error(t, err)
}
