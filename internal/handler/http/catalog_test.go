package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/my-movies/models"
)

func (e *testEnv) createMovie(token string, in models.CreateMovie) models.Movie {
	e.t.Helper()

	rec := e.do(http.MethodPost, "/api/v1/movies", token, in)
	require.Equal(e.t, http.StatusCreated, rec.Code, rec.Body.String())

	var movie models.Movie
	decode(e.t, rec, &movie)
	return movie
}

// ─────────────────────────────────────────────
// CRUD
// ─────────────────────────────────────────────

func TestMovies_CRUD(t *testing.T) {
	env := newTestEnv(t)
	token, user := env.register("alice")

	created := env.createMovie(token, models.CreateMovie{
		Title: "Heat",
		MovieDetails: models.MovieDetails{
			Identifiers: models.Identifiers{Barcode: ptr("4010232001234")},
			Production:  models.Production{ProductionYear: ptr(int64(1995))},
		},
	})
	require.NotEmpty(t, created.ID)
	assert.Equal(t, user.ID, created.UserID)
	assert.Equal(t, int64(1995), *created.ProductionYear)

	t.Run("get", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/v1/movies/"+created.ID, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got models.Movie
		decode(t, rec, &got)
		assert.Equal(t, "Heat", got.Title)
	})

	t.Run("update writes only given fields", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/v1/movies/"+created.ID, token, models.UpdateMovie{
			MovieDetails: models.MovieDetails{Director: ptr("Michael Mann")},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var got models.Movie
		decode(t, rec, &got)
		assert.Equal(t, "Heat", got.Title)
		assert.Equal(t, "Michael Mann", *got.Director)
		assert.Equal(t, int64(1995), *got.ProductionYear)
	})

	t.Run("delete", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/api/v1/movies/"+created.ID, token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())

		rec = env.do(http.MethodGet, "/api/v1/movies/"+created.ID, token, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not found", errorBody(t, rec))
	})

	t.Run("delete missing", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/api/v1/movies/"+created.ID, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMovies_Create_Invalid(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register("alice")

	tests := []struct {
		name string
		body any
	}{
		{"blank title", models.CreateMovie{Title: "   "}},
		{"missing title", `{}`},
		{"rating out of range", models.CreateMovie{
			Title:        "Heat",
			MovieDetails: models.MovieDetails{Production: models.Production{PersonalRating: ptr(11.0)}},
		}},
		{"malformed json", `{"title": 5`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodPost, "/api/v1/movies", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestMovies_OwnerIsolation(t *testing.T) {
	env := newTestEnv(t)
	aliceToken, _ := env.register("alice")
	bobToken, _ := env.register("bobby")

	movie := env.createMovie(aliceToken, models.CreateMovie{Title: "Heat"})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			var body any
			if method == http.MethodPut {
				body = models.UpdateMovie{Title: ptr("Stolen")}
			}
			rec := env.do(method, "/api/v1/movies/"+movie.ID, bobToken, body)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}

	rec := env.do(http.MethodGet, "/api/v1/movies", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page models.Page[models.Movie]
	decode(t, rec, &page)
	assert.Zero(t, page.Total)
}

// ─────────────────────────────────────────────
// Listing
// ─────────────────────────────────────────────

func TestMovies_List(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register("alice")

	t.Run("empty catalog has an empty array", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/v1/movies", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"items":[],"total":0,"limit":50,"offset":0}`, rec.Body.String())
	})

	env.createMovie(token, models.CreateMovie{Title: "Alien", MovieDetails: models.MovieDetails{
		Production: models.Production{ProductionYear: ptr(int64(1979)), Genres: ptr("Horror, Sci-Fi"), Watched: ptr(true)},
	}})
	env.createMovie(token, models.CreateMovie{Title: "Blade Runner", MovieDetails: models.MovieDetails{
		Production: models.Production{ProductionYear: ptr(int64(1982)), Genres: ptr("Sci-Fi")},
	}})
	env.createMovie(token, models.CreateMovie{Title: "Casablanca", MovieDetails: models.MovieDetails{
		Production: models.Production{ProductionYear: ptr(int64(1942)), Genres: ptr("Drama")},
	}})

	tests := []struct {
		name   string
		query  string
		titles []string
		total  int64
	}{
		{"default order", "", []string{"Alien", "Blade Runner", "Casablanca"}, 3},
		{"search", "?search=blade", []string{"Blade Runner"}, 1},
		{"genre", "?genre=sci-fi", []string{"Alien", "Blade Runner"}, 2},
		{"watched", "?watched=true", []string{"Alien"}, 1},
		{"year range", "?year_from=1950&year_to=1980", []string{"Alien"}, 1},
		{"sort desc", "?sort_by=production_year&sort_order=DESC", []string{"Blade Runner", "Alien", "Casablanca"}, 3},
		{"paging", "?limit=1&offset=1", []string{"Blade Runner"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodGet, "/api/v1/movies"+tt.query, token, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var page models.Page[models.Movie]
			decode(t, rec, &page)
			assert.Equal(t, tt.total, page.Total)

			titles := make([]string, 0, len(page.Items))
			for _, m := range page.Items {
				titles = append(titles, m.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestMovies_List_BadQuery(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register("alice")

	tests := []struct {
		query string
		msg   string
	}{
		{"?limit=-1", "limit must be a non-negative integer"},
		{"?watched=maybe", "watched must be a boolean"},
		{"?year_from=nineteen", "year_from must be an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := env.do(http.MethodGet, "/api/v1/movies"+tt.query, token, nil)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, errorBody(t, rec), tt.msg)
		})
	}
}

// ─────────────────────────────────────────────
// Duplicates
// ─────────────────────────────────────────────

func TestMovies_CheckDuplicates(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register("alice")

	heat := env.createMovie(token, models.CreateMovie{Title: "Heat", MovieDetails: models.MovieDetails{
		Identifiers: models.Identifiers{Barcode: ptr("111"), TMDBID: ptr(int64(949))},
	}})

	tests := []struct {
		name  string
		query string
		found bool
	}{
		{"by barcode", "?barcode=111", true},
		{"by tmdb id", "?tmdb_id=949", true},
		{"by title", "?title=heat", true},
		{"unknown barcode falls through to title", "?barcode=999&title=Heat", true},
		{"nothing matches", "?title=Ronin", false},
		{"empty query", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodGet, "/api/v1/movies/check-duplicates"+tt.query, token, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var check models.DuplicateCheck[models.Movie]
			decode(t, rec, &check)
			assert.Equal(t, tt.found, check.HasDuplicates)
			if tt.found {
				require.Len(t, check.Duplicates, 1)
				assert.Equal(t, heat.ID, check.Duplicates[0].ID)
			} else {
				assert.NotNil(t, check.Duplicates)
				assert.Empty(t, check.Duplicates)
			}
		})
	}

	t.Run("bad tmdb id", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/v1/movies/check-duplicates?tmdb_id=abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMovies_Duplicates(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register("alice")

	rec := env.do(http.MethodGet, "/api/v1/movies/duplicates", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"duplicate_groups":[],"total_groups":0}`, rec.Body.String())

	env.createMovie(token, models.CreateMovie{Title: "Heat"})
	env.createMovie(token, models.CreateMovie{Title: "heat "})
	env.createMovie(token, models.CreateMovie{Title: "Ronin"})

	rec = env.do(http.MethodGet, "/api/v1/movies/duplicates", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var groups models.DuplicateGroups[models.Movie]
	decode(t, rec, &groups)
	require.Equal(t, 1, groups.TotalGroups)
	assert.Len(t, groups.Groups[0], 2)
}

// ─────────────────────────────────────────────
// Series and collections share the same routes
// ─────────────────────────────────────────────

func TestSeries_CRUD(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register("alice")

	rec := env.do(http.MethodPost, "/api/v1/series", token, models.CreateSeries{Title: "The Wire"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var series models.Series
	decode(t, rec, &series)

	rec = env.do(http.MethodGet, "/api/v1/series?search=wire", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page models.Page[models.Series]
	decode(t, rec, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, series.ID, page.Items[0].ID)

	rec = env.do(http.MethodDelete, "/api/v1/series/"+series.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCollections_CRUD(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register("alice")

	rec := env.do(http.MethodPost, "/api/v1/collections", token, models.CreateCollection{Title: "Mann Box"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var collection models.Collection
	decode(t, rec, &collection)

	rec = env.do(http.MethodPut, "/api/v1/collections/"+collection.ID, token, models.UpdateCollection{Title: ptr("Michael Mann Box")})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &collection)
	assert.Equal(t, "Michael Mann Box", collection.Title)

	rec = env.do(http.MethodGet, "/api/v1/collections?watched=maybe", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code, "collections ignore catalog-only filters")
}
