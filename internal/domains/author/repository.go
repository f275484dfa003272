package author

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository is the persistence contract for authors.
// Listing order is ascending id, i.e. creation order.
type Repository interface {
	// Create inserts a new author and returns it with its generated ID.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound if there is no such author.
	GetByID(ctx context.Context, id int64) (*Author, error)

	List(ctx context.Context) ([]Author, error)

	// ListPage returns at most limit authors starting at offset.
	ListPage(ctx context.Context, offset, limit int64) ([]Author, error)

	Count(ctx context.Context) (int64, error)

	// Replace overwrites every field of the author with a.ID.
	// Returns ErrAuthorNotFound if it does not exist.
	Replace(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the author permanently. Books pointing at it are left alone.
	Delete(ctx context.Context, id int64) error

	ExistsByID(ctx context.Context, id int64) (bool, error)
}
