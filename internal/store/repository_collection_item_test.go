package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/my-movies/models"
)

func TestCollectionItems_AddListRemove(t *testing.T) {
	repos, _ := newTestRepositories(t)
	user := createTestUser(t, repos, "u1")
	ctx := context.Background()

	collection, err := repos.CollectionRepository.Create(ctx, user.ID, models.CreateCollection{Title: "Trilogy"})
	require.NoError(t, err)
	movie, err := repos.MovieRepository.Create(ctx, user.ID, models.CreateMovie{Title: "Part II"})
	require.NoError(t, err)
	series, err := repos.SeriesRepository.Create(ctx, user.ID, models.CreateSeries{Title: "Spin-off"})
	require.NoError(t, err)

	second, err := repos.CollectionItemRepository.AddItem(ctx, models.CollectionItem{
		CollectionID: collection.ID, ItemType: models.ItemTypeMovie, MovieID: &movie.ID, Position: 2,
	})
	require.NoError(t, err)
	first, err := repos.CollectionItemRepository.AddItem(ctx, models.CollectionItem{
		CollectionID: collection.ID, ItemType: models.ItemTypeSeries, SeriesID: &series.ID, Position: 1,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, &series.ID, first.SeriesID)
	assert.Nil(t, first.MovieID)

	items, err := repos.CollectionItemRepository.ListItems(ctx, collection.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)

	require.NoError(t, repos.CollectionItemRepository.RemoveItem(ctx, collection.ID, first.ID))
	assert.ErrorIs(t, repos.CollectionItemRepository.RemoveItem(ctx, collection.ID, first.ID), ErrNotFound)

	items, err = repos.CollectionItemRepository.ListItems(ctx, collection.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCollectionItems_RemoveRequiresMatchingCollection(t *testing.T) {
	repos, _ := newTestRepositories(t)
	user := createTestUser(t, repos, "u1")
	ctx := context.Background()

	a, err := repos.CollectionRepository.Create(ctx, user.ID, models.CreateCollection{Title: "A"})
	require.NoError(t, err)
	b, err := repos.CollectionRepository.Create(ctx, user.ID, models.CreateCollection{Title: "B"})
	require.NoError(t, err)
	movie, err := repos.MovieRepository.Create(ctx, user.ID, models.CreateMovie{Title: "M"})
	require.NoError(t, err)

	item, err := repos.CollectionItemRepository.AddItem(ctx, models.CollectionItem{
		CollectionID: a.ID, ItemType: models.ItemTypeMovie, MovieID: &movie.ID,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, repos.CollectionItemRepository.RemoveItem(ctx, b.ID, item.ID), ErrNotFound)
}

func TestCollectionItems_Constraints(t *testing.T) {
	repos, _ := newTestRepositories(t)
	user := createTestUser(t, repos, "u1")
	ctx := context.Background()

	collection, err := repos.CollectionRepository.Create(ctx, user.ID, models.CreateCollection{Title: "Box"})
	require.NoError(t, err)
	movie, err := repos.MovieRepository.Create(ctx, user.ID, models.CreateMovie{Title: "M"})
	require.NoError(t, err)

	tests := []struct {
		name string
		item models.CollectionItem
	}{
		{"dangling movie", models.CollectionItem{CollectionID: collection.ID, ItemType: models.ItemTypeMovie, MovieID: ptr("missing")}},
		{"dangling collection", models.CollectionItem{CollectionID: "missing", ItemType: models.ItemTypeMovie, MovieID: &movie.ID}},
		{"type mismatch", models.CollectionItem{CollectionID: collection.ID, ItemType: models.ItemTypeSeries, MovieID: &movie.ID}},
		{"both ids", models.CollectionItem{CollectionID: collection.ID, ItemType: models.ItemTypeMovie, MovieID: &movie.ID, SeriesID: ptr("x")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repos.CollectionItemRepository.AddItem(ctx, tt.item)
			assert.ErrorIs(t, err, ErrConstraint)
		})
	}
}

func TestCollectionItems_CascadeOnMovieDelete(t *testing.T) {
	repos, _ := newTestRepositories(t)
	user := createTestUser(t, repos, "u1")
	ctx := context.Background()

	collection, err := repos.CollectionRepository.Create(ctx, user.ID, models.CreateCollection{Title: "Box"})
	require.NoError(t, err)
	movie, err := repos.MovieRepository.Create(ctx, user.ID, models.CreateMovie{Title: "M"})
	require.NoError(t, err)
	_, err = repos.CollectionItemRepository.AddItem(ctx, models.CollectionItem{
		CollectionID: collection.ID, ItemType: models.ItemTypeMovie, MovieID: &movie.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repos.MovieRepository.Delete(ctx, user.ID, movie.ID))

	items, err := repos.CollectionItemRepository.ListItems(ctx, collection.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
