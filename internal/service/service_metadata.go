// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/my-movies/internal/adapter"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/models"
)

const (
	// maxActors is the number of cast members stored in the actors field.
	maxActors = 10

	directorJob = "Director"
)

type metadataService struct {
	tmdb   adapter.TMDBClient
	users  store.UserRepository
	movies MovieService
	series SeriesService

	logger *logger.Logger
}

// NewMetadataService builds the TMDB proxy and refresh service. Refreshed
// entries are written through movies and series so that the usual ownership
// checks and update events apply.
func NewMetadataService(
	tmdb adapter.TMDBClient,
	users store.UserRepository,
	movies MovieService,
	series SeriesService,
	logger *logger.Logger,
) MetadataService {
	return &metadataService{tmdb: tmdb, users: users, movies: movies, series: series, logger: logger}
}

func (s *metadataService) RefreshOptionsFor(ctx context.Context, userID string, force bool) models.RefreshOptions {
	opts := models.RefreshOptions{Language: models.DefaultLanguage, Force: force}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("user_id", userID).Msg("preferences unavailable, using defaults")
		return opts
	}
	if user.Language != "" {
		opts.Language = user.Language
	}
	opts.IncludeAdult = user.IncludeAdult
	return opts
}

func (s *metadataService) SearchMovies(ctx context.Context, userID, query string, year *int64) ([]models.TMDBMovieResult, error) {
	q, err := s.searchQuery(ctx, userID, query, year)
	if err != nil {
		return nil, err
	}
	results, err := s.tmdb.SearchMovies(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*metadataService.SearchMovies").Msg("TMDB search failed")
		return nil, mapError(err, ErrNotFound)
	}
	return results, nil
}

func (s *metadataService) SearchTV(ctx context.Context, userID, query string, year *int64) ([]models.TMDBTVResult, error) {
	q, err := s.searchQuery(ctx, userID, query, year)
	if err != nil {
		return nil, err
	}
	results, err := s.tmdb.SearchTV(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*metadataService.SearchTV").Msg("TMDB search failed")
		return nil, mapError(err, ErrNotFound)
	}
	return results, nil
}

func (s *metadataService) GetMovie(ctx context.Context, userID string, tmdbID int64) (models.TMDBMovieDetails, error) {
	opts := s.RefreshOptionsFor(ctx, userID, false)
	details, err := s.tmdb.GetMovieDetails(ctx, tmdbID, opts.Language)
	if err != nil {
		return models.TMDBMovieDetails{}, providerError(err, "TMDB movie", tmdbID)
	}
	return details, nil
}

func (s *metadataService) GetTV(ctx context.Context, userID string, tmdbID int64) (models.TMDBTVDetails, error) {
	opts := s.RefreshOptionsFor(ctx, userID, false)
	details, err := s.tmdb.GetTVDetails(ctx, tmdbID, opts.Language)
	if err != nil {
		return models.TMDBTVDetails{}, providerError(err, "TMDB series", tmdbID)
	}
	return details, nil
}

func (s *metadataService) SearchCollections(ctx context.Context, userID, query string) ([]models.TMDBCollectionResult, error) {
	q, err := s.searchQuery(ctx, userID, query, nil)
	if err != nil {
		return nil, err
	}
	results, err := s.tmdb.SearchCollections(ctx, q.Query, q.Language)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*metadataService.SearchCollections").Msg("TMDB search failed")
		return nil, mapError(err, ErrNotFound)
	}
	return results, nil
}

func (s *metadataService) GetCollection(ctx context.Context, userID string, tmdbID int64) (models.TMDBCollectionDetails, error) {
	opts := s.RefreshOptionsFor(ctx, userID, false)
	details, err := s.tmdb.GetCollectionDetails(ctx, tmdbID, opts.Language)
	if err != nil {
		return models.TMDBCollectionDetails{}, providerError(err, "TMDB collection", tmdbID)
	}
	return details, nil
}

// RefreshMovie refreshes one movie on request of its owner. A local poster
// is kept.
func (s *metadataService) RefreshMovie(ctx context.Context, userID, movieID string) (models.Movie, error) {
	movie, err := s.movies.Get(ctx, userID, movieID)
	if err != nil {
		return models.Movie{}, err
	}

	updated, outcome, err := s.RefreshMovieEntry(ctx, movie, s.RefreshOptionsFor(ctx, userID, false))
	switch {
	case err != nil:
		return models.Movie{}, err
	case outcome == models.RefreshNotFound:
		return models.Movie{}, fmt.Errorf("%w: no TMDB match for %q", ErrNotFound, movie.Title)
	}
	return updated, nil
}

// RefreshMovieEntry implements [MetadataService]. The movie is resolved by
// its TMDB id, else by its IMDb id, else by a title search restricted to its
// production year. At most one lookup precedes the details and credits calls.
func (s *metadataService) RefreshMovieEntry(ctx context.Context, movie models.Movie, opts models.RefreshOptions) (models.Movie, models.RefreshOutcome, error) {
	log := logger.FromContext(ctx).With().Str("movie_id", movie.ID).Logger()

	tmdbID, found, err := s.resolveMovieID(ctx, movie, opts)
	if err != nil {
		log.Err(err).Str("func", "*metadataService.RefreshMovieEntry").Msg("resolving TMDB id failed")
		return movie, models.RefreshFailed, mapError(err, ErrNotFound)
	}
	if !found {
		return movie, models.RefreshNotFound, nil
	}

	details, err := s.tmdb.GetMovieDetails(ctx, tmdbID, opts.Language)
	if errors.Is(err, adapter.ErrNotFound) {
		return movie, models.RefreshNotFound, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*metadataService.RefreshMovieEntry").Int64("tmdb_id", tmdbID).Msg("fetching details failed")
		return movie, models.RefreshFailed, mapError(err, ErrNotFound)
	}

	credits, err := s.tmdb.GetMovieCredits(ctx, tmdbID, opts.Language)
	if err != nil {
		log.Err(err).Str("func", "*metadataService.RefreshMovieEntry").Int64("tmdb_id", tmdbID).Msg("fetching credits failed")
		return movie, models.RefreshFailed, mapError(err, ErrNotFound)
	}

	updated, err := s.movies.Update(ctx, movie.UserID, movie.ID, moviePatch(movie, details, credits, opts.Force))
	if err != nil {
		return movie, models.RefreshFailed, err
	}

	log.Debug().Int64("tmdb_id", tmdbID).Msg("movie refreshed from TMDB")
	return updated, models.RefreshUpdated, nil
}

func (s *metadataService) resolveMovieID(ctx context.Context, movie models.Movie, opts models.RefreshOptions) (int64, bool, error) {
	if movie.TMDBID != nil && *movie.TMDBID > 0 {
		return *movie.TMDBID, true, nil
	}

	if movie.IMDbID != nil && *movie.IMDbID != "" {
		// one lookup per movie: a /find miss is final, no title search follows
		hit, err := s.tmdb.FindByIMDbID(ctx, *movie.IMDbID, opts.Language)
		if err != nil || hit == nil {
			return 0, false, err
		}
		return hit.ID, true, nil
	}

	results, err := s.tmdb.SearchMovies(ctx, models.TMDBSearchQuery{
		Query:        movie.Title,
		Year:         movie.ProductionYear,
		Language:     opts.Language,
		IncludeAdult: opts.IncludeAdult,
		MaxPages:     1,
	})
	if err != nil {
		return 0, false, err
	}
	if len(results) == 0 {
		return 0, false, nil
	}
	return results[0].ID, true, nil
}

// RefreshSeries refreshes one series on request of its owner.
func (s *metadataService) RefreshSeries(ctx context.Context, userID, seriesID string) (models.Series, error) {
	log := logger.FromContext(ctx).With().Str("series_id", seriesID).Logger()

	series, err := s.series.Get(ctx, userID, seriesID)
	if err != nil {
		return models.Series{}, err
	}
	opts := s.RefreshOptionsFor(ctx, userID, false)

	var tmdbID int64
	if series.TMDBID != nil && *series.TMDBID > 0 {
		tmdbID = *series.TMDBID
	} else {
		results, err := s.tmdb.SearchTV(ctx, models.TMDBSearchQuery{
			Query:        series.Title,
			Year:         series.ProductionYear,
			Language:     opts.Language,
			IncludeAdult: opts.IncludeAdult,
			MaxPages:     1,
		})
		if err != nil {
			log.Err(err).Str("func", "*metadataService.RefreshSeries").Msg("TMDB search failed")
			return models.Series{}, mapError(err, ErrNotFound)
		}
		if len(results) == 0 {
			return models.Series{}, fmt.Errorf("%w: no TMDB match for %q", ErrNotFound, series.Title)
		}
		tmdbID = results[0].ID
	}

	details, err := s.tmdb.GetTVDetails(ctx, tmdbID, opts.Language)
	if err != nil {
		return models.Series{}, providerError(err, "TMDB series", tmdbID)
	}
	credits, err := s.tmdb.GetTVCredits(ctx, tmdbID, opts.Language)
	if err != nil {
		return models.Series{}, providerError(err, "TMDB series credits", tmdbID)
	}

	return s.series.Update(ctx, userID, seriesID, seriesPatch(series, details, credits, opts.Force))
}

func (s *metadataService) searchQuery(ctx context.Context, userID, query string, year *int64) (models.TMDBSearchQuery, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.TMDBSearchQuery{}, validationError("query is required")
	}
	opts := s.RefreshOptionsFor(ctx, userID, false)
	return models.TMDBSearchQuery{
		Query:        query,
		Year:         year,
		Language:     opts.Language,
		IncludeAdult: opts.IncludeAdult,
		MaxPages:     1,
	}, nil
}

// providerError turns a provider 404 into ErrNotFound and maps the rest.
func providerError(err error, what string, id int64) error {
	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %s %d", ErrNotFound, what, id)
	}
	return mapError(err, ErrNotFound)
}

func moviePatch(movie models.Movie, d models.TMDBMovieDetails, c models.TMDBCredits, force bool) models.UpdateMovie {
	var patch models.UpdateMovie

	patch.TMDBID = &d.ID
	patch.IMDbID = nonEmptyPtr(d.IMDbID)
	patch.OriginalTitle = nonEmpty(d.OriginalTitle)
	patch.Description = nonEmpty(d.Overview)
	patch.Tagline = nonEmpty(d.Tagline)
	patch.ReleaseDate = nonEmpty(d.ReleaseDate)
	if movie.ProductionYear == nil {
		patch.ProductionYear = yearOf(d.ReleaseDate)
	}
	if d.Runtime != nil && *d.Runtime > 0 {
		patch.RunningTime = d.Runtime
	}
	if d.Budget > 0 {
		patch.Budget = &d.Budget
	}
	if d.Revenue > 0 {
		patch.Revenue = &d.Revenue
	}
	if d.VoteAverage > 0 {
		patch.RatingTMDB = &d.VoteAverage
	}

	patch.Genres = nonEmpty(genreNames(d.Genres))
	patch.ProductionCompanies = nonEmpty(companyNames(d.ProductionCompanies))
	patch.ProductionCountries = nonEmpty(countryNames(d.ProductionCountries))
	patch.Director = nonEmpty(director(c))
	patch.Actors = nonEmpty(actors(c))

	if force || !movie.HasPoster() {
		patch.PosterPath = nonEmptyPtr(d.PosterPath)
	}
	if force || movie.BackdropPath == nil {
		patch.BackdropPath = nonEmptyPtr(d.BackdropPath)
	}

	return patch
}

func seriesPatch(series models.Series, d models.TMDBTVDetails, c models.TMDBCredits, force bool) models.UpdateSeries {
	var patch models.UpdateSeries

	patch.TMDBID = &d.ID
	patch.OriginalTitle = nonEmpty(d.OriginalName)
	patch.Description = nonEmpty(d.Overview)
	patch.Tagline = nonEmpty(d.Tagline)
	patch.FirstAired = nonEmpty(d.FirstAirDate)
	if series.ProductionYear == nil {
		patch.ProductionYear = yearOf(d.FirstAirDate)
	}
	if len(d.EpisodeRunTime) > 0 && d.EpisodeRunTime[0] > 0 {
		patch.RunningTime = &d.EpisodeRunTime[0]
	}
	if d.NumberOfEpisodes != nil && *d.NumberOfEpisodes > 0 {
		patch.EpisodeCount = d.NumberOfEpisodes
	}
	patch.Status = nonEmpty(d.Status)
	if d.VoteAverage > 0 {
		patch.RatingTMDB = &d.VoteAverage
	}

	patch.Network = nonEmpty(companyNames(d.Networks))
	patch.Genres = nonEmpty(genreNames(d.Genres))
	patch.ProductionCompanies = nonEmpty(companyNames(d.ProductionCompanies))
	patch.Actors = nonEmpty(actors(c))

	if force || series.PosterPath == nil || *series.PosterPath == "" {
		patch.PosterPath = nonEmptyPtr(d.PosterPath)
	}
	if force || series.BackdropPath == nil {
		patch.BackdropPath = nonEmptyPtr(d.BackdropPath)
	}

	return patch
}

func director(c models.TMDBCredits) string {
	for _, member := range c.Crew {
		if member.Job == directorJob {
			return member.Name
		}
	}
	return ""
}

func actors(c models.TMDBCredits) string {
	names := make([]string, 0, maxActors)
	for _, member := range c.Cast {
		if len(names) == maxActors {
			break
		}
		names = append(names, member.Name)
	}
	return strings.Join(names, ", ")
}

func genreNames(genres []models.TMDBGenre) string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

func companyNames(companies []models.TMDBCompany) string {
	names := make([]string, 0, len(companies))
	for _, c := range companies {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

func countryNames(countries []models.TMDBCountry) string {
	names := make([]string, 0, len(countries))
	for _, c := range countries {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonEmptyPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return nonEmpty(*s)
}

// yearOf parses the year of a YYYY-MM-DD date.
func yearOf(date string) *int64 {
	if len(date) < 4 {
		return nil
	}
	year, err := strconv.ParseInt(date[:4], 10, 64)
	if err != nil || year == 0 {
		return nil
	}
	return &year
}
