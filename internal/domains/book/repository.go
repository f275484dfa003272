package book

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository is the persistence contract for books, ordered by ascending id.
type Repository interface {
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns ErrBookNotFound if there is no such book.
	GetByID(ctx context.Context, id int64) (*Book, error)

	List(ctx context.Context) ([]Book, error)
	ListPage(ctx context.Context, offset, limit int64) ([]Book, error)
	Count(ctx context.Context) (int64, error)

	// Replace overwrites every field of the book with b.ID.
	Replace(ctx context.Context, b *Book) (*Book, error)

	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// AuthorChecker reports whether an author id exists. The author repository satisfies it.
type AuthorChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
