package service

import (
	"context"
	"fmt"

	"library-api/internal/domains/author"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/serializer"
)

// authorService implements author.Service
type authorService struct {
	repo author.Repository
}

// NewAuthorService wires the service to its repository.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) ListPage(ctx context.Context, fields serializer.Fields) ([]author.Author, pagination.Paginator, error) {
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
		return []author.Author{}, pagination.New(req, total, 0), nil
	}

	authors, err := s.repo.ListPage(ctx, skip, req.PageSize)
	if err != nil {
		return nil, pagination.Paginator{}, err
	}

	return authors, pagination.New(req, total, len(authors)), nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	if id <= 0 {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, fields serializer.Fields) (*author.Author, error) {
	req, err := author.ParseAuthorRequest(fields)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (s *authorService) Replace(ctx context.Context, id int64, fields serializer.Fields) (*author.Author, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	req, err := author.ParseAuthorRequest(fields)
	if err != nil {
		return nil, err
	}

	return s.repo.Replace(ctx, req.ToEntity(id))
}

// Delete is a hard delete and does not cascade to the author's books.
func (s *authorService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return author.ErrAuthorNotFound
	}
	return s.repo.Delete(ctx, id)
}
