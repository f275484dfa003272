package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/author"
	"library-api/internal/domains/author/repository"
	"library-api/internal/testutil"
)

func newRepo(t *testing.T) author.Repository {
	return repository.NewSQLRepository(testutil.NewSQLiteDB(t))
}

func seed(t *testing.T, repo author.Repository, n int) []author.Author {
	t.Helper()
	out := make([]author.Author, 0, n)
	for i := 1; i <= n; i++ {
		a, err := repo.Create(context.Background(), &author.Author{
			Name:  fmt.Sprintf("Author %d", i),
			Email: fmt.Sprintf("author%d@example.com", i),
			Bio:   "bio",
		})
		require.NoError(t, err)
		out = append(out, *a)
	}
	return out
}

func TestSQLRepository_CreateAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &author.Author{Name: "Ada", Email: "ada@example.com", Bio: "math"})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	_, err = repo.GetByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestSQLRepository_ListOrderAndCount(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	seeded := seed(t, repo, 5)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seeded, all)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestSQLRepository_ListPageRoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	seeded := seed(t, repo, 10)

	const size = 3
	var collected []author.Author
	for page := int64(1); page <= 4; page++ {
		rows, err := repo.ListPage(ctx, (page-1)*size, size)
		require.NoError(t, err)
		collected = append(collected, rows...)
	}
	assert.Equal(t, seeded, collected)

	last, err := repo.ListPage(ctx, 9, size)
	require.NoError(t, err)
	assert.Len(t, last, 1)

	beyond, err := repo.ListPage(ctx, 30, size)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestSQLRepository_Replace(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	a := seed(t, repo, 1)[0]

	updated, err := repo.Replace(ctx, &author.Author{ID: a.ID, Name: "New", Email: "new@example.com", Bio: "new bio"})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, author.Author{ID: a.ID, Name: "New", Email: "new@example.com", Bio: "new bio"}, *got)

	_, err = repo.Replace(ctx, &author.Author{ID: a.ID + 1, Name: "x", Email: "x@example.com", Bio: "x"})
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestSQLRepository_DeleteAndExists(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	a := seed(t, repo, 1)[0]

	exists, err := repo.ExistsByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, a.ID))

	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)

	exists, err = repo.ExistsByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, repo.Delete(ctx, a.ID), author.ErrAuthorNotFound)
}
