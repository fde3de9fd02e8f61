package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/models"
)

var movieSpec = catalogSpec[models.Movie, models.CreateMovie, models.UpdateMovie, models.CatalogFilter]{
	table: "movies",
	row: func(m *models.Movie) []field {
		return rowFields(&m.ID, &m.UserID, &m.Title, movieDetailFields(&m.MovieDetails), &m.CreatedAt, &m.UpdatedAt)
	},
	create: func(c *models.CreateMovie) []field {
		return concat([]field{{"title", &c.Title}}, movieDetailFields(&c.MovieDetails))
	},
	patch: func(p *models.UpdateMovie) []field {
		return concat([]field{{"title", &p.Title}}, movieDetailFields(&p.MovieDetails))
	},
	filter: func(f models.CatalogFilter) ([]sq.Sqlizer, models.ListOptions) {
		return catalogPredicates(f, "title", "original_title", "director"), f.ListOptions
	},
	sortColumns: map[string]string{
		"title":           "title",
		"sort_title":      "sort_title",
		"production_year": "production_year",
		"created_at":      "created_at",
		"personal_rating": "personal_rating",
	},
	defaultSort: "title",
}

// NewMovieRepository constructs a [MovieRepository] over the movies table.
func NewMovieRepository(db *DB, ids idGenerator, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return newCatalogTable(db, ids, movieSpec)
}
