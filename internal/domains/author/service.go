package author

import (
	"context"

	"library-api/internal/shared/pagination"
	"library-api/internal/shared/serializer"
)

// Service is the author use-case layer used by the HTTP handler.
// Methods taking serializer.Fields validate them first and return
// serializer.FieldErrors when the body is invalid.
type Service interface {
	List(ctx context.Context) ([]Author, error)

	// ListPage validates page/page_size and returns the page with its paginator.
	ListPage(ctx context.Context, fields serializer.Fields) ([]Author, pagination.Paginator, error)

	GetByID(ctx context.Context, id int64) (*Author, error)

	Create(ctx context.Context, fields serializer.Fields) (*Author, error)

	// Replace looks the author up before validating, so an unknown id is
	// ErrAuthorNotFound whatever the body holds.
	Replace(ctx context.Context, id int64, fields serializer.Fields) (*Author, error)

	Delete(ctx context.Context, id int64) error
}
