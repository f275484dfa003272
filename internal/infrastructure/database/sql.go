package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // goqu postgres dialect
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // goqu sqlite3 dialect
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/rs/zerolog/log"
)

// goqu dialect names, matching the database/sql driver names
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// SQLDB is a database/sql handle (wrapped by sqlx) plus the dialect the
// query builder has to speak for it.
type SQLDB struct {
	DB      *sqlx.DB
	Dialect string
}

// SQLOptions tunes the database/sql pool.
type SQLOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// OpenSQL opens and pings a sqlx handle for driver ("postgres" or "sqlite3").
func OpenSQL(ctx context.Context, driver, dsn string, opts SQLOptions) (*SQLDB, error) {
	switch driver {
	case DialectPostgres, DialectSQLite:
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == DialectSQLite {
		// one writer; also keeps a shared in-memory database alive on a single connection
		db.SetMaxOpenConns(1)
	} else if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	s := &SQLDB{DB: db, Dialect: driver}
	if err := s.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Str("driver", driver).Msg("[DATABASE] sql connection established")
	return s, nil
}

func (s *SQLDB) Ping(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("database handle is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.DB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (s *SQLDB) Close() error {
	if s.DB == nil {
		return nil
	}
	err := s.DB.Close()
	s.DB = nil
	return err
}
