package service

import (
	"context"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/models"
)

// collectionItemService links movies and series into collections. Both the
// collection and the referenced entry must belong to the caller.
type collectionItemService struct {
	items       store.CollectionItemRepository
	collections store.CollectionRepository
	movies      store.MovieRepository
	series      store.SeriesRepository

	logger *logger.Logger
}

func NewCollectionItemService(
	items store.CollectionItemRepository,
	collections store.CollectionRepository,
	movies store.MovieRepository,
	series store.SeriesRepository,
	logger *logger.Logger,
) CollectionItemService {
	return &collectionItemService{
		items:       items,
		collections: collections,
		movies:      movies,
		series:      series,
		logger:      logger,
	}
}

// AddItem implements [CollectionItemService]. Without an explicit position
// the item is appended after the current last one.
func (s *collectionItemService) AddItem(ctx context.Context, userID, collectionID string, req models.AddCollectionItem) (models.CollectionItem, error) {
	if _, err := s.collections.Get(ctx, userID, collectionID); err != nil {
		return models.CollectionItem{}, mapError(err, ErrNotFound)
	}

	item := models.CollectionItem{CollectionID: collectionID, ItemType: req.ItemType}

	switch req.ItemType {
	case models.ItemTypeMovie:
		if req.MovieID == nil || req.SeriesID != nil {
			return models.CollectionItem{}, validationError("a movie item needs movie_id and no series_id")
		}
		if _, err := s.movies.Get(ctx, userID, *req.MovieID); err != nil {
			return models.CollectionItem{}, mapError(err, ErrNotFound)
		}
		item.MovieID = req.MovieID
	case models.ItemTypeSeries:
		if req.SeriesID == nil || req.MovieID != nil {
			return models.CollectionItem{}, validationError("a series item needs series_id and no movie_id")
		}
		if _, err := s.series.Get(ctx, userID, *req.SeriesID); err != nil {
			return models.CollectionItem{}, mapError(err, ErrNotFound)
		}
		item.SeriesID = req.SeriesID
	default:
		return models.CollectionItem{}, validationError("item_type must be one of: movie, series")
	}

	if req.Position != nil {
		item.Position = *req.Position
	} else {
		existing, err := s.items.ListItems(ctx, collectionID)
		if err != nil {
			return models.CollectionItem{}, mapError(err, ErrNotFound)
		}
		for _, e := range existing {
			if e.Position >= item.Position {
				item.Position = e.Position + 1
			}
		}
	}

	added, err := s.items.AddItem(ctx, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionItemService.AddItem").Str("collection_id", collectionID).Msg("adding item failed")
		return models.CollectionItem{}, mapError(err, ErrNotFound)
	}
	return added, nil
}

// ListItems implements [CollectionItemService].
func (s *collectionItemService) ListItems(ctx context.Context, userID, collectionID string) ([]models.CollectionItem, error) {
	if _, err := s.collections.Get(ctx, userID, collectionID); err != nil {
		return nil, mapError(err, ErrNotFound)
	}

	items, err := s.items.ListItems(ctx, collectionID)
	if err != nil {
		return nil, mapError(err, ErrNotFound)
	}
	if items == nil {
		items = []models.CollectionItem{}
	}
	return items, nil
}

// RemoveItem implements [CollectionItemService].
func (s *collectionItemService) RemoveItem(ctx context.Context, userID, collectionID, itemID string) error {
	if _, err := s.collections.Get(ctx, userID, collectionID); err != nil {
		return mapError(err, ErrNotFound)
	}

	if err := s.items.RemoveItem(ctx, collectionID, itemID); err != nil {
		return mapError(err, ErrNotFound)
	}
	return nil
}
