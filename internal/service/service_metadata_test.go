// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/my-movies/internal/adapter"
	"github.com/MKhiriev/my-movies/internal/events"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/mock"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/models"
)

type metadataFixture struct {
	svc    MetadataService
	tmdb   *mock.MockTMDBClient
	repos  *store.Repositories
	movies MovieService
	pub    *recordingPublisher
	user   models.User
}

func newMetadataFixture(t *testing.T) metadataFixture {
	t.Helper()

	repos := newTestRepositories(t)
	pub := &recordingPublisher{}
	tmdb := mock.NewMockTMDBClient(gomock.NewController(t))
	movies := NewMovieService(repos.MovieRepository, pub, logger.Nop())
	series := NewSeriesService(repos.SeriesRepository, pub, logger.Nop())

	return metadataFixture{
		svc:    NewMetadataService(tmdb, repos.UserRepository, movies, series, logger.Nop()),
		tmdb:   tmdb,
		repos:  repos,
		movies: movies,
		pub:    pub,
		user:   createUser(t, repos, "u1"),
	}
}

func fightClubDetails() models.TMDBMovieDetails {
	return models.TMDBMovieDetails{
		ID:            550,
		IMDbID:        ptr("tt0137523"),
		Title:         "Fight Club",
		OriginalTitle: "Fight Club",
		Overview:      "An insomniac office worker...",
		Tagline:       "Mischief. Mayhem. Soap.",
		Runtime:       ptr(int64(139)),
		ReleaseDate:   "1999-10-15",
		PosterPath:    ptr("/tmdb-poster.jpg"),
		Budget:        63000000,
		Revenue:       100853753,
		VoteAverage:   8.4,
		Genres:        []models.TMDBGenre{{ID: 18, Name: "Drama"}, {ID: 53, Name: "Thriller"}},
	}
}

func bigCast() models.TMDBCredits {
	credits := models.TMDBCredits{
		Crew: []models.TMDBCrewMember{
			{Name: "Jim Uhls", Job: "Screenplay"},
			{Name: "David Fincher", Job: "Director"},
			{Name: "Someone Else", Job: "Director"},
		},
	}
	for i := 1; i <= 12; i++ {
		credits.Cast = append(credits.Cast, models.TMDBCastMember{Name: fmt.Sprintf("Actor %d", i), Order: i})
	}
	return credits
}

// ── RefreshMovieEntry ───────────────────────────────────────────────────────

func TestRefreshMovieEntry_SearchesByTitleAndYear(t *testing.T) {
	f := newMetadataFixture(t)
	ctx := context.Background()

	movie, err := f.movies.Create(ctx, f.user.ID, models.CreateMovie{
		Title:        "Fight Club",
		MovieDetails: models.MovieDetails{Production: models.Production{ProductionYear: ptr(int64(1999))}},
	})
	require.NoError(t, err)

	f.tmdb.EXPECT().
		SearchMovies(gomock.Any(), models.TMDBSearchQuery{Query: "Fight Club", Year: ptr(int64(1999)), Language: "en-US", MaxPages: 1}).
		Return([]models.TMDBMovieResult{{ID: 550}}, nil)
	f.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(550), "en-US").Return(fightClubDetails(), nil)
	f.tmdb.EXPECT().GetMovieCredits(gomock.Any(), int64(550), "en-US").Return(bigCast(), nil)

	updated, outcome, err := f.svc.RefreshMovieEntry(ctx, movie, models.RefreshOptions{Language: "en-US"})
	require.NoError(t, err)
	assert.Equal(t, models.RefreshUpdated, outcome)

	assert.Equal(t, int64(550), *updated.TMDBID)
	assert.Equal(t, "tt0137523", *updated.IMDbID)
	assert.Equal(t, "David Fincher", *updated.Director)
	assert.Equal(t, "Actor 1, Actor 2, Actor 3, Actor 4, Actor 5, Actor 6, Actor 7, Actor 8, Actor 9, Actor 10", *updated.Actors)
	assert.Equal(t, "Drama, Thriller", *updated.Genres)
	assert.Equal(t, "An insomniac office worker...", *updated.Description)
	assert.Equal(t, int64(139), *updated.RunningTime)
	assert.Equal(t, int64(63000000), *updated.Budget)
	assert.Equal(t, "/tmdb-poster.jpg", *updated.PosterPath)
	assert.Equal(t, int64(1999), *updated.ProductionYear)
	assert.Equal(t, "Fight Club", updated.Title)

	assert.Contains(t, f.pub.types(), events.MovieUpdated)
}

func TestRefreshMovieEntry_KeepsLocalPosterUnlessForced(t *testing.T) {
	f := newMetadataFixture(t)
	ctx := context.Background()

	movie, err := f.movies.Create(ctx, f.user.ID, models.CreateMovie{
		Title: "Fight Club",
		MovieDetails: models.MovieDetails{
			Identifiers: models.Identifiers{TMDBID: ptr(int64(550))},
			Production:  models.Production{PosterPath: ptr("/uploads/posters/local.jpg")},
		},
	})
	require.NoError(t, err)

	f.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(550), gomock.Any()).Return(fightClubDetails(), nil).Times(2)
	f.tmdb.EXPECT().GetMovieCredits(gomock.Any(), int64(550), gomock.Any()).Return(bigCast(), nil).Times(2)

	kept, _, err := f.svc.RefreshMovieEntry(ctx, movie, models.RefreshOptions{Language: "de-DE"})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/posters/local.jpg", *kept.PosterPath)

	forced, _, err := f.svc.RefreshMovieEntry(ctx, kept, models.RefreshOptions{Language: "de-DE", Force: true})
	require.NoError(t, err)
	assert.Equal(t, "/tmdb-poster.jpg", *forced.PosterPath)
}

func TestRefreshMovieEntry_Outcomes(t *testing.T) {
	ctx := context.Background()

	t.Run("no search hit", func(t *testing.T) {
		f := newMetadataFixture(t)
		movie, err := f.movies.Create(ctx, f.user.ID, models.CreateMovie{Title: "Unknown Home Video"})
		require.NoError(t, err)

		f.tmdb.EXPECT().SearchMovies(gomock.Any(), gomock.Any()).Return([]models.TMDBMovieResult{}, nil)

		_, outcome, err := f.svc.RefreshMovieEntry(ctx, movie, models.RefreshOptions{})
		require.NoError(t, err)
		assert.Equal(t, models.RefreshNotFound, outcome)
	})

	t.Run("provider 404", func(t *testing.T) {
		f := newMetadataFixture(t)
		movie, err := f.movies.Create(ctx, f.user.ID, models.CreateMovie{
			Title:        "Gone",
			MovieDetails: models.MovieDetails{Identifiers: models.Identifiers{TMDBID: ptr(int64(1))}},
		})
		require.NoError(t, err)

		f.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(1), gomock.Any()).
			Return(models.TMDBMovieDetails{}, fmt.Errorf("%w: %w", adapter.ErrExternalAPI, adapter.ErrNotFound))

		_, outcome, err := f.svc.RefreshMovieEntry(ctx, movie, models.RefreshOptions{})
		require.NoError(t, err)
		assert.Equal(t, models.RefreshNotFound, outcome)
	})

	t.Run("provider failure", func(t *testing.T) {
		f := newMetadataFixture(t)
		movie, err := f.movies.Create(ctx, f.user.ID, models.CreateMovie{Title: "Heat"})
		require.NoError(t, err)

		f.tmdb.EXPECT().SearchMovies(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrNotConfigured)

		_, outcome, err := f.svc.RefreshMovieEntry(ctx, movie, models.RefreshOptions{})
		require.ErrorIs(t, err, ErrExternalAPI)
		assert.Equal(t, models.RefreshFailed, outcome)
	})

	t.Run("imdb id lookup", func(t *testing.T) {
		f := newMetadataFixture(t)
		movie, err := f.movies.Create(ctx, f.user.ID, models.CreateMovie{
			Title:        "Fight Club",
			MovieDetails: models.MovieDetails{Identifiers: models.Identifiers{IMDbID: ptr("tt0137523")}},
		})
		require.NoError(t, err)

		f.tmdb.EXPECT().FindByIMDbID(gomock.Any(), "tt0137523", gomock.Any()).Return(&models.TMDBMovieResult{ID: 550}, nil)
		f.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(550), gomock.Any()).Return(fightClubDetails(), nil)
		f.tmdb.EXPECT().GetMovieCredits(gomock.Any(), int64(550), gomock.Any()).Return(models.TMDBCredits{}, nil)

		updated, outcome, err := f.svc.RefreshMovieEntry(ctx, movie, models.RefreshOptions{})
		require.NoError(t, err)
		assert.Equal(t, models.RefreshUpdated, outcome)
		assert.Equal(t, int64(550), *updated.TMDBID)
		assert.Nil(t, updated.Director)
	})

	t.Run("imdb id miss ends the lookup", func(t *testing.T) {
		f := newMetadataFixture(t)
		movie, err := f.movies.Create(ctx, f.user.ID, models.CreateMovie{
			Title:        "Fight Club",
			MovieDetails: models.MovieDetails{Identifiers: models.Identifiers{IMDbID: ptr("tt9999999")}},
		})
		require.NoError(t, err)

		// any SearchMovies or details call would be unexpected
		f.tmdb.EXPECT().FindByIMDbID(gomock.Any(), "tt9999999", gomock.Any()).Return(nil, nil)

		_, outcome, err := f.svc.RefreshMovieEntry(ctx, movie, models.RefreshOptions{})
		require.NoError(t, err)
		assert.Equal(t, models.RefreshNotFound, outcome)
	})
}

// ── Per-user options and proxies ────────────────────────────────────────────

func TestRefreshOptionsFor(t *testing.T) {
	f := newMetadataFixture(t)
	ctx := context.Background()

	_, err := f.repos.UserRepository.UpdatePreferences(ctx, f.user.ID, models.Preferences{
		Language: "fr-FR", IncludeAdult: true, Theme: "dark", CardSize: "medium",
	})
	require.NoError(t, err)

	opts := f.svc.RefreshOptionsFor(ctx, f.user.ID, true)
	assert.Equal(t, models.RefreshOptions{Language: "fr-FR", IncludeAdult: true, Force: true}, opts)

	fallback := f.svc.RefreshOptionsFor(ctx, "missing-user", false)
	assert.Equal(t, models.RefreshOptions{Language: models.DefaultLanguage}, fallback)
}

func TestMetadata_SearchRequiresQuery(t *testing.T) {
	f := newMetadataFixture(t)

	_, err := f.svc.SearchMovies(context.Background(), f.user.ID, "  ", nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestMetadata_GetMovieNotFound(t *testing.T) {
	f := newMetadataFixture(t)

	f.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(9), models.DefaultLanguage).
		Return(models.TMDBMovieDetails{}, fmt.Errorf("%w: %w", adapter.ErrExternalAPI, adapter.ErrNotFound))

	_, err := f.svc.GetMovie(context.Background(), f.user.ID, 9)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMetadata_Collections(t *testing.T) {
	f := newMetadataFixture(t)
	ctx := context.Background()

	f.tmdb.EXPECT().SearchCollections(gomock.Any(), "Matrix", models.DefaultLanguage).
		Return([]models.TMDBCollectionResult{{ID: 2344, Name: "The Matrix Collection"}}, nil)
	f.tmdb.EXPECT().GetCollectionDetails(gomock.Any(), int64(2344), models.DefaultLanguage).
		Return(models.TMDBCollectionDetails{ID: 2344, Name: "The Matrix Collection", Parts: []models.TMDBMovieResult{{ID: 603}}}, nil)
	f.tmdb.EXPECT().GetCollectionDetails(gomock.Any(), int64(7), gomock.Any()).
		Return(models.TMDBCollectionDetails{}, adapter.ErrNotFound)

	results, err := f.svc.SearchCollections(ctx, f.user.ID, " Matrix ")
	require.NoError(t, err)
	require.Len(t, results, 1)

	details, err := f.svc.GetCollection(ctx, f.user.ID, 2344)
	require.NoError(t, err)
	assert.Len(t, details.Parts, 1)

	_, err = f.svc.GetCollection(ctx, f.user.ID, 7)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.SearchCollections(ctx, f.user.ID, "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestRefreshSeries(t *testing.T) {
	f := newMetadataFixture(t)
	ctx := context.Background()

	series, err := f.repos.SeriesRepository.Create(ctx, f.user.ID, models.CreateSeries{Title: "Dark"})
	require.NoError(t, err)

	f.tmdb.EXPECT().SearchTV(gomock.Any(), gomock.Any()).Return([]models.TMDBTVResult{{ID: 70523, Name: "Dark"}}, nil)
	f.tmdb.EXPECT().GetTVDetails(gomock.Any(), int64(70523), gomock.Any()).Return(models.TMDBTVDetails{
		ID:               70523,
		OriginalName:     "Dark",
		FirstAirDate:     "2017-12-01",
		NumberOfEpisodes: ptr(int64(26)),
		Status:           "Ended",
		Networks:         []models.TMDBCompany{{Name: "Netflix"}},
	}, nil)
	f.tmdb.EXPECT().GetTVCredits(gomock.Any(), int64(70523), gomock.Any()).Return(models.TMDBCredits{
		Cast: []models.TMDBCastMember{{Name: "Louis Hofmann"}},
	}, nil)

	updated, err := f.svc.RefreshSeries(ctx, f.user.ID, series.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(70523), *updated.TMDBID)
	assert.Equal(t, "Netflix", *updated.Network)
	assert.Equal(t, int64(26), *updated.EpisodeCount)
	assert.Equal(t, int64(2017), *updated.ProductionYear)
	assert.Equal(t, "Louis Hofmann", *updated.Actors)
	assert.Contains(t, f.pub.types(), events.SeriesUpdated)
}
