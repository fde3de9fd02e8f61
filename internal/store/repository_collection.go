package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/models"
)

var collectionSpec = catalogSpec[models.Collection, models.CreateCollection, models.UpdateCollection, models.CollectionFilter]{
	table: "collections",
	row: func(c *models.Collection) []field {
		return rowFields(&c.ID, &c.UserID, &c.Title, collectionDetailFields(&c.CollectionDetails), &c.CreatedAt, &c.UpdatedAt)
	},
	create: func(c *models.CreateCollection) []field {
		return concat([]field{{"title", &c.Title}}, collectionDetailFields(&c.CollectionDetails))
	},
	patch: func(p *models.UpdateCollection) []field {
		return concat([]field{{"title", &p.Title}}, collectionDetailFields(&p.CollectionDetails))
	},
	filter: func(f models.CollectionFilter) ([]sq.Sqlizer, models.ListOptions) {
		var preds []sq.Sqlizer
		if f.Search != nil && *f.Search != "" {
			pattern := "%" + *f.Search + "%"
			preds = append(preds, sq.Or{sq.Like{"title": pattern}, sq.Like{"original_title": pattern}})
		}
		return preds, f.ListOptions
	},
	sortColumns: map[string]string{
		"title":      "title",
		"sort_title": "sort_title",
		"created_at": "created_at",
	},
	defaultSort: "title",
}

// NewCollectionRepository constructs a [CollectionRepository] over the
// collections table.
func NewCollectionRepository(db *DB, ids idGenerator, logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating collection repository")
	return newCatalogTable(db, ids, collectionSpec)
}
