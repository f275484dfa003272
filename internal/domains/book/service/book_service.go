package service

import (
	"context"
	"fmt"

	"library-api/internal/domains/book"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/serializer"
)

// bookService implements book.Service
type bookService struct {
	repo    book.Repository
	authors book.AuthorChecker
}

// NewBookService wires the service to the book store and to the author
// lookup used to validate the "author" field.
func NewBookService(repo book.Repository, authors book.AuthorChecker) book.Service {
	return &bookService{
		repo:    repo,
		authors: authors,
	}
}

func (s *bookService) List(ctx context.Context) ([]book.Book, error) {
	return s.repo.List(ctx)
}

func (s *bookService) ListPage(ctx context.Context, fields serializer.Fields) ([]book.Book, pagination.Paginator, error) {
	req, err := pagination.ParseRequest(fields)
	if err != nil {
		return nil, pagination.Paginator{}, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, pagination.Paginator{}, err
	}

	skip, ok := req.Skip()
	if !ok {
		return []book.Book{}, pagination.New(req, total, 0), nil
	}

	books, err := s.repo.ListPage(ctx, skip, req.PageSize)
	if err != nil {
		return nil, pagination.Paginator{}, err
	}

	return books, pagination.New(req, total, len(books)), nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	if id <= 0 {
		return nil, book.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Create(ctx context.Context, fields serializer.Fields) (*book.Book, error) {
	req, err := s.parse(ctx, fields)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return created, nil
}

func (s *bookService) Replace(ctx context.Context, id int64, fields serializer.Fields) (*book.Book, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	req, err := s.parse(ctx, fields)
	if err != nil {
		return nil, err
	}

	return s.repo.Replace(ctx, req.ToEntity(id))
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return book.ErrBookNotFound
	}
	return s.repo.Delete(ctx, id)
}

// parse reads and validates a book body. The referenced author must exist
// at the time of the request; it is reported next to the other field errors.
func (s *bookService) parse(ctx context.Context, fields serializer.Fields) (book.BookRequest, error) {
	rd := serializer.NewReader(fields)
	req := book.ReadBookRequest(rd)

	if !rd.Errors().Has("author") {
		exists, err := s.authors.ExistsByID(ctx, req.AuthorID)
		if err != nil {
			return book.BookRequest{}, fmt.Errorf("failed to look up author: %w", err)
		}
		if !exists {
			rd.AddError("author", serializer.MsgPKDoesNotExist(req.AuthorID))
		}
	}

	if err := rd.Validate(req); err != nil {
		return book.BookRequest{}, err
	}
	return req, nil
}
