package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	"library-api/internal/infrastructure/database"
	"library-api/pkg/logger"

	"library-api/internal/domains/author"
	authorHandler "library-api/internal/domains/author/handler"
	authorRepo "library-api/internal/domains/author/repository"
	authorService "library-api/internal/domains/author/service"

	"library-api/internal/domains/book"
	bookHandler "library-api/internal/domains/book/handler"
	bookRepo "library-api/internal/domains/book/repository"
	bookService "library-api/internal/domains/book/service"
)

const startupTimeout = 30 * time.Second

// Pinger is the store health check used by GET /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. It is built once at
// startup and handed to the router.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB // set when DB_DRIVER=pgx
	SQL    *database.SQLDB      // set when DB_DRIVER=postgres or sqlite3
	Store  Pinger

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	AuthorRepo author.Repository
	BookRepo   book.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthorService author.Service
	BookService   book.Service

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads the configuration and builds the graph in order:
// config, store, repositories, services, handlers.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.App.Environment, cfg.Log.Level)
	log.Info().
		Str("env", cfg.App.Environment).
		Str("driver", cfg.Database.Driver).
		Msg("🔧 Initializing DI Container...")

	c, err := New(cfg)
	if err != nil {
		return nil, err
	}

	log.Info().Msg("🎉 DI Container initialized successfully")
	return c, nil
}

// New builds the container for an already loaded configuration.
func New(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	// ========================================
	// STEP 1: OPEN STORE
	// ========================================
	if err := c.initStore(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 2: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initServices()
	c.initHandlers()

	return c, nil
}

// NewWithSQL builds the container on an already opened sqlx store.
// The caller keeps ownership of db.
func NewWithSQL(cfg *config.Config, db *database.SQLDB) *Container {
	c := &Container{Config: cfg}
	c.useSQL(db)
	c.initServices()
	c.initHandlers()
	return c
}

func (c *Container) initStore(ctx context.Context) error {
	dbCfg := c.Config.Database

	switch dbCfg.Driver {
	case config.DriverPgx:
		poolCfg, err := config.LoadDatabaseConfig(dbCfg)
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(poolCfg)
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db

		if err := db.HealthCheck(ctx); err != nil {
			return fmt.Errorf("database health check failed: %w", err)
		}
		if dbCfg.AutoMigrate {
			if err := db.EnsureSchema(ctx); err != nil {
				return err
			}
		}

		c.Store = db
		c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
		c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)

	case config.DriverPostgres, config.DriverSQLite:
		dsn := dbCfg.PostgresDSN()
		if dbCfg.Driver == config.DriverSQLite {
			dsn = dbCfg.SQLiteDSN()
		}

		db, err := database.OpenSQL(ctx, dbCfg.Driver, dsn, database.SQLOptions{
			MaxOpenConns: dbCfg.MaxConns,
			MaxIdleConns: dbCfg.MinConns,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.SQL = db

		if dbCfg.AutoMigrate {
			if err := db.EnsureSchema(ctx); err != nil {
				return err
			}
		}
		c.useSQL(db)

	default:
		return fmt.Errorf("unsupported database driver %q", dbCfg.Driver)
	}

	logger.Info("✅ Database connected", map[string]interface{}{
		"driver":       dbCfg.Driver,
		"auto_migrate": dbCfg.AutoMigrate,
	})
	return nil
}

func (c *Container) useSQL(db *database.SQLDB) {
	c.SQL = db
	c.Store = db
	c.AuthorRepo = authorRepo.NewSQLRepository(db)
	c.BookRepo = bookRepo.NewSQLRepository(db)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	// books validate their author against the author store
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

// Cleanup closes whichever store was opened. Called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Warn("⚠️  Failed to close database", err)
		}
	}
	if c.SQL != nil {
		if err := c.SQL.Close(); err != nil {
			logger.Warn("⚠️  Failed to close database", err)
		}
	}
	log.Info().Msg("✅ Container cleanup completed")
}
