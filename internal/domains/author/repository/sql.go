package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"library-api/internal/domains/author"
	"library-api/internal/infrastructure/database"
)

const authorsTable = "authors"

var authorSelectColumns = []interface{}{"id", "name", "email", "bio"}

// sqlRepository implements author.Repository on database/sql through sqlx,
// with statements built by goqu for the handle's dialect (postgres or sqlite3).
type sqlRepository struct {
	db        *sqlx.DB
	dialect   goqu.DialectWrapper
	returning bool // INSERT ... RETURNING id vs LastInsertId
}

func NewSQLRepository(db *database.SQLDB) author.Repository {
	return &sqlRepository{
		db:        db.DB,
		dialect:   goqu.Dialect(db.Dialect),
		returning: db.Dialect == database.DialectPostgres,
	}
}

func (r *sqlRepository) selectAuthors() *goqu.SelectDataset {
	return r.dialect.From(authorsTable).
		Select(authorSelectColumns...).
		Order(goqu.C("id").Asc()).
		Prepared(true)
}

func authorRecord(a *author.Author) goqu.Record {
	return goqu.Record{
		"name":  a.Name,
		"email": a.Email,
		"bio":   a.Bio,
	}
}

func (r *sqlRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	insert := r.dialect.Insert(authorsTable).Rows(authorRecord(a)).Prepared(true)

	var id int64
	if r.returning {
		query, args, err := insert.Returning(goqu.C("id")).ToSQL()
		if err != nil {
			return nil, fmt.Errorf("failed to build author insert: %w", err)
		}
		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to create author: %w", err)
		}
	} else {
		query, args, err := insert.ToSQL()
		if err != nil {
			return nil, fmt.Errorf("failed to build author insert: %w", err)
		}
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to create author: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("failed to read author id: %w", err)
		}
	}

	created := *a
	created.ID = id
	return &created, nil
}

func (r *sqlRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	query, args, err := r.selectAuthors().Where(goqu.C("id").Eq(id)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build author query: %w", err)
	}

	var a author.Author
	if err := r.db.GetContext(ctx, &a, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return &a, nil
}

func (r *sqlRepository) List(ctx context.Context) ([]author.Author, error) {
	return r.selectMany(ctx, r.selectAuthors())
}

func (r *sqlRepository) ListPage(ctx context.Context, offset, limit int64) ([]author.Author, error) {
	return r.selectMany(ctx, r.selectAuthors().Offset(uint(offset)).Limit(uint(limit)))
}

func (r *sqlRepository) selectMany(ctx context.Context, ds *goqu.SelectDataset) ([]author.Author, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build authors query: %w", err)
	}

	authors := []author.Author{}
	if err := r.db.SelectContext(ctx, &authors, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	return authors, nil
}

func (r *sqlRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := r.dialect.From(authorsTable).
		Select(goqu.COUNT(goqu.Star())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build authors count: %w", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return total, nil
}

func (r *sqlRepository) Replace(ctx context.Context, a *author.Author) (*author.Author, error) {
	query, args, err := r.dialect.Update(authorsTable).
		Set(authorRecord(a)).
		Where(goqu.C("id").Eq(a.ID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build author update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	} else if n == 0 {
		return nil, author.ErrAuthorNotFound
	}

	updated := *a
	return &updated, nil
}

func (r *sqlRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.dialect.Delete(authorsTable).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build author delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	} else if n == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *sqlRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.dialect.From(authorsTable).
		Select(goqu.L("1")).
		Where(goqu.C("id").Eq(id)).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("failed to build author exists query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return true, nil
}
