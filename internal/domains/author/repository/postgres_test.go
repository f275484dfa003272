package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/author"
	"library-api/internal/domains/author/repository"
	"library-api/internal/testutil"
)

func TestPostgresRepository_Lifecycle(t *testing.T) {
	// setup
	repo := repository.NewPostgresRepository(testutil.NewPostgresPool(t))
	ctx := context.Background()

	// arrange
	seeded := seed(t, repo, 5)

	// act + assert
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seeded, all)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	page, err := repo.ListPage(ctx, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, seeded[3:], page)

	past, err := repo.ListPage(ctx, 10, 3)
	require.NoError(t, err)
	assert.Empty(t, past)

	got, err := repo.GetByID(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, seeded[0], *got)

	exists, err := repo.ExistsByID(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.True(t, exists)

	replaced, err := repo.Replace(ctx, &author.Author{ID: seeded[0].ID, Name: "Grace", Email: "grace@example.com", Bio: "navy"})
	require.NoError(t, err)
	assert.Equal(t, author.Author{ID: seeded[0].ID, Name: "Grace", Email: "grace@example.com", Bio: "navy"}, *replaced)

	require.NoError(t, repo.Delete(ctx, seeded[0].ID))
	assert.ErrorIs(t, repo.Delete(ctx, seeded[0].ID), author.ErrAuthorNotFound)

	_, err = repo.GetByID(ctx, seeded[0].ID)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)

	_, err = repo.Replace(ctx, &author.Author{ID: seeded[0].ID, Name: "x", Email: "x@example.com", Bio: "x"})
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)

	exists, err = repo.ExistsByID(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
