package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/book"
	"library-api/internal/domains/book/repository"
	"library-api/internal/testutil"
)

func TestPostgresRepository_Lifecycle(t *testing.T) {
	// setup
	repo := repository.NewPostgresRepository(testutil.NewPostgresPool(t))
	ctx := context.Background()

	// arrange
	first, err := repo.Create(ctx, newBook(t, "Dune", 7, "12.5"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newBook(t, "Emma", 8, "99999999.99"))
	require.NoError(t, err)

	// act + assert
	assert.Equal(t, "12.50", first.Price.StringFixed(book.PriceDecimalPlace))
	assert.Equal(t, "2020-05-17", first.PublishedDate.String())

	got, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assertSameBook(t, *second, *got)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	page, err := repo.ListPage(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assertSameBook(t, *second, page[0])

	update := newBook(t, "Dune Messiah", 7, "9.99")
	update.ID = first.ID
	update.PublishedDate = mustDate(t, "1969-10-15")
	replaced, err := repo.Replace(ctx, update)
	require.NoError(t, err)
	assertSameBook(t, *update, *replaced)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), book.ErrBookNotFound)

	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	exists, err := repo.ExistsByID(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}
