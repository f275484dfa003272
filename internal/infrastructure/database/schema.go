package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"
)

// books.author_id has no foreign key: deleting an author leaves its books
// in place with a dangling author id.

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id    BIGSERIAL PRIMARY KEY,
		name  VARCHAR(100) NOT NULL,
		email VARCHAR(254) NOT NULL,
		bio   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id             BIGSERIAL PRIMARY KEY,
		title          VARCHAR(200) NOT NULL,
		author_id      BIGINT NOT NULL,
		published_date DATE NOT NULL,
		price          NUMERIC(10, 2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books (author_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		name  VARCHAR(100) NOT NULL,
		email VARCHAR(254) NOT NULL,
		bio   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		title          VARCHAR(200) NOT NULL,
		author_id      INTEGER NOT NULL,
		published_date DATE NOT NULL,
		price          TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books (author_id)`,
}

// EnsureSchema creates the authors and books tables on the pgx pool if missing.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	err := WithTransaction(ctx, db.Pool, func(tx pgx.Tx) error {
		for _, stmt := range postgresSchema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// EnsureSchema creates the authors and books tables for the handle's dialect if missing.
func (s *SQLDB) EnsureSchema(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("database handle is not initialized")
	}

	stmts := postgresSchema
	if s.Dialect == DialectSQLite {
		stmts = sqliteSchema
	}

	err := WithSQLTransaction(ctx, s.DB, func(tx *sqlx.Tx) error {
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
