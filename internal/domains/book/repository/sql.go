package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"library-api/internal/domains/book"
	"library-api/internal/infrastructure/database"
)

const booksTable = "books"

var bookSelectColumns = []interface{}{"id", "title", "author_id", "published_date", "price"}

// sqlRepository implements book.Repository on sqlx with goqu-built statements.
type sqlRepository struct {
	db        *sqlx.DB
	dialect   goqu.DialectWrapper
	returning bool
}

func NewSQLRepository(db *database.SQLDB) book.Repository {
	return &sqlRepository{
		db:        db.DB,
		dialect:   goqu.Dialect(db.Dialect),
		returning: db.Dialect == database.DialectPostgres,
	}
}

func (r *sqlRepository) selectBooks() *goqu.SelectDataset {
	return r.dialect.From(booksTable).
		Select(bookSelectColumns...).
		Order(goqu.C("id").Asc()).
		Prepared(true)
}

// bookRecord sends date and price as text; both drivers cast it into the column type.
func bookRecord(b *book.Book) goqu.Record {
	return goqu.Record{
		"title":          b.Title,
		"author_id":      b.AuthorID,
		"published_date": b.PublishedDate.String(),
		"price":          b.Price.String(),
	}
}

func (r *sqlRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	insert := r.dialect.Insert(booksTable).Rows(bookRecord(b)).Prepared(true)

	var id int64
	if r.returning {
		query, args, err := insert.Returning(goqu.C("id")).ToSQL()
		if err != nil {
			return nil, fmt.Errorf("failed to build book insert: %w", err)
		}
		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to create book: %w", err)
		}
	} else {
		query, args, err := insert.ToSQL()
		if err != nil {
			return nil, fmt.Errorf("failed to build book insert: %w", err)
		}
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to create book: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return nil, fmt.Errorf("failed to read book id: %w", err)
		}
	}

	created := *b
	created.ID = id
	return &created, nil
}

func (r *sqlRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	query, args, err := r.selectBooks().Where(goqu.C("id").Eq(id)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build book query: %w", err)
	}

	var b book.Book
	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return &b, nil
}

func (r *sqlRepository) List(ctx context.Context) ([]book.Book, error) {
	return r.selectMany(ctx, r.selectBooks())
}

func (r *sqlRepository) ListPage(ctx context.Context, offset, limit int64) ([]book.Book, error) {
	return r.selectMany(ctx, r.selectBooks().Offset(uint(offset)).Limit(uint(limit)))
}

func (r *sqlRepository) selectMany(ctx context.Context, ds *goqu.SelectDataset) ([]book.Book, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build books query: %w", err)
	}

	books := []book.Book{}
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	return books, nil
}

func (r *sqlRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := r.dialect.From(booksTable).
		Select(goqu.COUNT(goqu.Star())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build books count: %w", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return total, nil
}

func (r *sqlRepository) Replace(ctx context.Context, b *book.Book) (*book.Book, error) {
	query, args, err := r.dialect.Update(booksTable).
		Set(bookRecord(b)).
		Where(goqu.C("id").Eq(b.ID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build book update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	if n == 0 {
		return nil, book.ErrBookNotFound
	}

	updated := *b
	return &updated, nil
}

func (r *sqlRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.dialect.Delete(booksTable).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build book delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if n == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *sqlRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.dialect.From(booksTable).
		Select(goqu.L("1")).
		Where(goqu.C("id").Eq(id)).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("failed to build book exists query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return true, nil
}
