package store

import (
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/utils"
)

// Repositories bundles every repository over one shared [DB].
type Repositories struct {
	UserRepository           UserRepository
	MovieRepository          MovieRepository
	SeriesRepository         SeriesRepository
	CollectionRepository     CollectionRepository
	CollectionItemRepository CollectionItemRepository
	SettingRepository        SettingRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	ids := utils.NewUUIDGenerator()

	return &Repositories{
		UserRepository:           NewUserRepository(db, ids, logger),
		MovieRepository:          NewMovieRepository(db, ids, logger),
		SeriesRepository:         NewSeriesRepository(db, ids, logger),
		CollectionRepository:     NewCollectionRepository(db, ids, logger),
		CollectionItemRepository: NewCollectionItemRepository(db, ids, logger),
		SettingRepository:        NewSettingRepository(db, logger),
	}
}
