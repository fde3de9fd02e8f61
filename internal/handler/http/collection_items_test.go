package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/my-movies/models"
)

func TestCollectionItems(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register("alice")

	rec := env.do(http.MethodPost, "/api/v1/collections", token, models.CreateCollection{Title: "Alien Anthology"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var collection models.Collection
	decode(t, rec, &collection)

	alien := env.createMovie(token, models.CreateMovie{Title: "Alien"})
	aliens := env.createMovie(token, models.CreateMovie{Title: "Aliens"})
	itemsPath := "/api/v1/collections/" + collection.ID + "/items"

	t.Run("empty list", func(t *testing.T) {
		rec := env.do(http.MethodGet, itemsPath, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	var first models.CollectionItem
	t.Run("add appends in order", func(t *testing.T) {
		rec := env.do(http.MethodPost, itemsPath, token, models.AddCollectionItem{ItemType: models.ItemTypeMovie, MovieID: &alien.ID})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		decode(t, rec, &first)
		assert.Equal(t, int64(0), first.Position)

		rec = env.do(http.MethodPost, itemsPath, token, models.AddCollectionItem{ItemType: models.ItemTypeMovie, MovieID: &aliens.ID})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var second models.CollectionItem
		decode(t, rec, &second)
		assert.Equal(t, int64(1), second.Position)

		rec = env.do(http.MethodGet, itemsPath, token, nil)
		var items []models.CollectionItem
		decode(t, rec, &items)
		require.Len(t, items, 2)
		assert.Equal(t, alien.ID, *items[0].MovieID)
		assert.Equal(t, aliens.ID, *items[1].MovieID)
	})

	t.Run("mismatched ids", func(t *testing.T) {
		rec := env.do(http.MethodPost, itemsPath, token, models.AddCollectionItem{ItemType: models.ItemTypeSeries, MovieID: &alien.ID})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown movie", func(t *testing.T) {
		rec := env.do(http.MethodPost, itemsPath, token, models.AddCollectionItem{ItemType: models.ItemTypeMovie, MovieID: ptr("missing")})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("foreign collection", func(t *testing.T) {
		bobToken, _ := env.register("bobby")
		rec := env.do(http.MethodGet, itemsPath, bobToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("remove", func(t *testing.T) {
		rec := env.do(http.MethodDelete, itemsPath+"/"+first.ID, token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(http.MethodDelete, itemsPath+"/"+first.ID, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
