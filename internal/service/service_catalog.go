// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/my-movies/internal/events"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/models"
)

// pager is satisfied by every list filter through its embedded ListOptions.
type pager interface {
	Paging() models.ListOptions
}

// catalogEntity describes how the generic catalog service reads one entity family.
type catalogEntity[T any] struct {
	name string
	id   func(T) string
	key  func(T) duplicateKey

	// empty event types are not published
	added, updated, deleted events.Type
}

// catalogService is the shared implementation behind MovieService,
// SeriesService and CollectionService.
type catalogService[T, C, P any, F pager] struct {
	repo      store.CatalogRepository[T, C, P, F]
	entity    catalogEntity[T]
	publisher events.Publisher

	logger *logger.Logger
}

var movieEntity = catalogEntity[models.Movie]{
	name: "movie",
	id:   func(m models.Movie) string { return m.ID },
	key: func(m models.Movie) duplicateKey {
		return newDuplicateKey(m.Title, m.Barcode, m.TMDBID)
	},
	added:   events.MovieAdded,
	updated: events.MovieUpdated,
	deleted: events.MovieDeleted,
}

var seriesEntity = catalogEntity[models.Series]{
	name: "series",
	id:   func(s models.Series) string { return s.ID },
	key: func(s models.Series) duplicateKey {
		return newDuplicateKey(s.Title, s.Barcode, s.TMDBID)
	},
	added:   events.SeriesAdded,
	updated: events.SeriesUpdated,
	deleted: events.SeriesDeleted,
}

var collectionEntity = catalogEntity[models.Collection]{
	name: "collection",
	id:   func(c models.Collection) string { return c.ID },
	key: func(c models.Collection) duplicateKey {
		return newDuplicateKey(c.Title, c.Barcode, c.TMDBID)
	},
}

func NewMovieService(repo store.MovieRepository, publisher events.Publisher, logger *logger.Logger) MovieService {
	return &catalogService[models.Movie, models.CreateMovie, models.UpdateMovie, models.CatalogFilter]{
		repo: repo, entity: movieEntity, publisher: publisher, logger: logger,
	}
}

func NewSeriesService(repo store.SeriesRepository, publisher events.Publisher, logger *logger.Logger) SeriesService {
	return &catalogService[models.Series, models.CreateSeries, models.UpdateSeries, models.CatalogFilter]{
		repo: repo, entity: seriesEntity, publisher: publisher, logger: logger,
	}
}

func NewCollectionService(repo store.CollectionRepository, publisher events.Publisher, logger *logger.Logger) CollectionService {
	return &catalogService[models.Collection, models.CreateCollection, models.UpdateCollection, models.CollectionFilter]{
		repo: repo, entity: collectionEntity, publisher: publisher, logger: logger,
	}
}

func (s *catalogService[T, C, P, F]) Create(ctx context.Context, userID string, input C) (T, error) {
	created, err := s.repo.Create(ctx, userID, input)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.Create").Str("entity", s.entity.name).Msg("create failed")
		var zero T
		return zero, mapError(err, ErrNotFound)
	}

	s.publish(ctx, userID, s.entity.added, created)
	return created, nil
}

func (s *catalogService[T, C, P, F]) Get(ctx context.Context, userID, id string) (T, error) {
	found, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		var zero T
		return zero, mapError(err, ErrNotFound)
	}
	return found, nil
}

func (s *catalogService[T, C, P, F]) List(ctx context.Context, userID string, filter F) (models.Page[T], error) {
	opts := filter.Paging().Normalize()

	items, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.List").Str("entity", s.entity.name).Msg("list failed")
		return models.Page[T]{}, mapError(err, ErrNotFound)
	}

	total, err := s.repo.Count(ctx, userID, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.List").Str("entity", s.entity.name).Msg("count failed")
		return models.Page[T]{}, mapError(err, ErrNotFound)
	}

	if items == nil {
		items = []T{}
	}
	return models.Page[T]{Items: items, Total: total, Limit: opts.Limit, Offset: opts.Offset}, nil
}

func (s *catalogService[T, C, P, F]) Count(ctx context.Context, userID string, filter F) (int64, error) {
	total, err := s.repo.Count(ctx, userID, filter)
	if err != nil {
		return 0, mapError(err, ErrNotFound)
	}
	return total, nil
}

// Update reads the row before writing so that a foreign or missing id
// fails with ErrNotFound instead of updating nothing.
func (s *catalogService[T, C, P, F]) Update(ctx context.Context, userID, id string, patch P) (T, error) {
	var zero T
	if _, err := s.Get(ctx, userID, id); err != nil {
		return zero, err
	}

	updated, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.Update").Str("entity", s.entity.name).Str("id", id).Msg("update failed")
		return zero, mapError(err, ErrNotFound)
	}

	s.publish(ctx, userID, s.entity.updated, updated)
	return updated, nil
}

func (s *catalogService[T, C, P, F]) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.Delete").Str("entity", s.entity.name).Str("id", id).Msg("delete failed")
		return mapError(err, ErrNotFound)
	}

	s.publish(ctx, userID, s.entity.deleted, events.Deleted{ID: id})
	return nil
}

// FindDuplicates implements [CatalogService]. A barcode or TMDB id match is
// definitive and yields exactly one row; without one, every row whose title
// or original title equals q.Title is returned.
func (s *catalogService[T, C, P, F]) FindDuplicates(ctx context.Context, userID string, q models.DuplicateQuery) ([]T, error) {
	if q.Barcode != nil && strings.TrimSpace(*q.Barcode) != "" {
		rows, err := s.repo.FindByBarcode(ctx, userID, strings.TrimSpace(*q.Barcode))
		if err != nil {
			return nil, mapError(err, ErrNotFound)
		}
		if len(rows) > 0 {
			return rows[:1], nil
		}
	}

	if q.TMDBID != nil {
		rows, err := s.repo.FindByTMDBID(ctx, userID, *q.TMDBID)
		if err != nil {
			return nil, mapError(err, ErrNotFound)
		}
		if len(rows) > 0 {
			return rows[:1], nil
		}
	}

	title := strings.TrimSpace(q.Title)
	if title == "" {
		return []T{}, nil
	}

	rows, err := s.repo.FindByTitle(ctx, userID, title)
	if err != nil {
		return nil, mapError(err, ErrNotFound)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// FindAllDuplicates implements [CatalogService].
func (s *catalogService[T, C, P, F]) FindAllDuplicates(ctx context.Context, userID string) ([][]T, error) {
	rows, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.FindAllDuplicates").Str("entity", s.entity.name).Msg("loading catalog failed")
		return nil, mapError(err, ErrNotFound)
	}

	return groupDuplicates(rows, s.entity.key), nil
}

func (s *catalogService[T, C, P, F]) publish(ctx context.Context, userID string, t events.Type, payload any) {
	if t == "" || s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, userID, t, payload); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.publish").Str("type", string(t)).Msg("event not published")
	}
}
