package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/models"
)

// collectionItemRepository stores the links between collections and their
// member movies and series. Ownership of the collection is checked by the
// caller before any method is invoked.
type collectionItemRepository struct {
	db  *DB
	ids idGenerator
}

func NewCollectionItemRepository(db *DB, ids idGenerator, logger *logger.Logger) CollectionItemRepository {
	logger.Debug().Msg("creating collection item repository")
	return &collectionItemRepository{db: db, ids: ids}
}

func collectionItemFields(item *models.CollectionItem) []field {
	return []field{
		{"id", &item.ID},
		{"collection_id", &item.CollectionID},
		{"item_type", (*string)(&item.ItemType)},
		{"movie_id", &item.MovieID},
		{"series_id", &item.SeriesID},
		{"position", &item.Position},
		{"created_at", &item.CreatedAt},
	}
}

// AddItem inserts the link. A dangling movie, series or collection id is
// rejected by the foreign keys as [ErrConstraint].
func (r *collectionItemRepository) AddItem(ctx context.Context, item models.CollectionItem) (models.CollectionItem, error) {
	log := logger.FromContext(ctx)

	c, err := r.db.conn(ctx)
	if err != nil {
		return models.CollectionItem{}, err
	}
	defer c.Close()

	item.ID = r.ids.Generate()
	item.CreatedAt = time.Now().UTC()

	_, err = c.ExecContext(ctx, addCollectionItem,
		item.ID, item.CollectionID, string(item.ItemType), item.MovieID, item.SeriesID, item.Position, item.CreatedAt,
	)
	if err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", "*collectionItemRepository.AddItem").Msg("error adding collection item")
		return models.CollectionItem{}, err
	}

	var saved models.CollectionItem
	if err = c.QueryRowContext(ctx, getCollectionItem, item.ID).Scan(pointers(collectionItemFields(&saved))...); err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", "*collectionItemRepository.AddItem").Msg("error reading collection item")
		return models.CollectionItem{}, err
	}

	return saved, nil
}

// ListItems returns the items of a collection ordered by position.
func (r *collectionItemRepository) ListItems(ctx context.Context, collectionID string) ([]models.CollectionItem, error) {
	log := logger.FromContext(ctx)

	c, err := r.db.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	rows, err := c.QueryContext(ctx, listCollectionItems, collectionID)
	if err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", "*collectionItemRepository.ListItems").Msg("error listing collection items")
		return nil, err
	}
	defer rows.Close()

	items := make([]models.CollectionItem, 0)
	for rows.Next() {
		var item models.CollectionItem
		if err = rows.Scan(pointers(collectionItemFields(&item))...); err != nil {
			return nil, errors.Join(ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return items, nil
}

// RemoveItem deletes the item only if it belongs to collectionID.
func (r *collectionItemRepository) RemoveItem(ctx context.Context, collectionID, itemID string) error {
	log := logger.FromContext(ctx)

	c, err := r.db.conn(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	res, err := c.ExecContext(ctx, removeCollectionItem, itemID, collectionID)
	if err != nil {
		err = classifyError(err)
		log.Err(err).Str("func", "*collectionItemRepository.RemoveItem").Msg("error removing collection item")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return classifyError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
