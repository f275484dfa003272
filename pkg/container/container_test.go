package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/config"
	"library-api/internal/infrastructure/database"
	"library-api/internal/testutil"
)

func TestNewWithSQL(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: config.DriverSQLite}}
	c := NewWithSQL(cfg, testutil.NewSQLiteDB(t))

	require.NotNil(t, c.Store)
	assert.NoError(t, c.Store.Ping(context.Background()))
	assert.NotNil(t, c.AuthorHandler)
	assert.NotNil(t, c.BookHandler)
}

func TestCleanup(t *testing.T) {
	t.Run("sql store", func(t *testing.T) {
		cfg := &config.Config{Database: config.DatabaseConfig{Driver: config.DriverSQLite}}
		c := NewWithSQL(cfg, testutil.NewSQLiteDB(t))

		c.Cleanup()
		assert.Nil(t, c.SQL.DB)

		assert.NotPanics(t, c.Cleanup)
	})

	t.Run("pgx pool never opened", func(t *testing.T) {
		c := &Container{DB: &database.PostgresDB{}}

		assert.NotPanics(t, c.Cleanup)
		assert.Nil(t, c.DB.Pool)
	})
}
