package book

import (
	"context"

	"library-api/internal/shared/pagination"
	"library-api/internal/shared/serializer"
)

// Service is the book use-case layer used by the HTTP handler.
type Service interface {
	List(ctx context.Context) ([]Book, error)
	ListPage(ctx context.Context, fields serializer.Fields) ([]Book, pagination.Paginator, error)
	GetByID(ctx context.Context, id int64) (*Book, error)

	// Create and Replace report an unknown author as a field error on "author".
	Create(ctx context.Context, fields serializer.Fields) (*Book, error)
	Replace(ctx context.Context, id int64, fields serializer.Fields) (*Book, error)

	Delete(ctx context.Context, id int64) error
}
