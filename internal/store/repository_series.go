package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/models"
)

var seriesSpec = catalogSpec[models.Series, models.CreateSeries, models.UpdateSeries, models.CatalogFilter]{
	table: "series",
	row: func(s *models.Series) []field {
		return rowFields(&s.ID, &s.UserID, &s.Title, seriesDetailFields(&s.SeriesDetails), &s.CreatedAt, &s.UpdatedAt)
	},
	create: func(c *models.CreateSeries) []field {
		return concat([]field{{"title", &c.Title}}, seriesDetailFields(&c.SeriesDetails))
	},
	patch: func(p *models.UpdateSeries) []field {
		return concat([]field{{"title", &p.Title}}, seriesDetailFields(&p.SeriesDetails))
	},
	filter: func(f models.CatalogFilter) ([]sq.Sqlizer, models.ListOptions) {
		return catalogPredicates(f, "title", "original_title", "network"), f.ListOptions
	},
	sortColumns: map[string]string{
		"title":           "title",
		"sort_title":      "sort_title",
		"production_year": "production_year",
		"first_aired":     "first_aired",
		"created_at":      "created_at",
		"personal_rating": "personal_rating",
	},
	defaultSort: "title",
}

// NewSeriesRepository constructs a [SeriesRepository] over the series table.
func NewSeriesRepository(db *DB, ids idGenerator, logger *logger.Logger) SeriesRepository {
	logger.Debug().Msg("creating series repository")
	return newCatalogTable(db, ids, seriesSpec)
}
