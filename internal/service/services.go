package service

import (
	"github.com/MKhiriev/my-movies/internal/adapter"
	"github.com/MKhiriev/my-movies/internal/config"
	"github.com/MKhiriev/my-movies/internal/crypto"
	"github.com/MKhiriev/my-movies/internal/events"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/internal/validators"
	"github.com/MKhiriev/my-movies/models"
)

type Services struct {
	AuthService           AuthService
	MovieService          MovieService
	SeriesService         SeriesService
	CollectionService     CollectionService
	CollectionItemService CollectionItemService
	ImportService         ImportService
	SettingsService       SettingsService
	ScanService           ScanService
	MetadataService       MetadataService
	AppInfoService        AppInfoService
}

// Clients are the external provider clients shared by the services.
type Clients struct {
	TMDB    adapter.TMDBClient
	Barcode adapter.BarcodeClient
}

func NewServices(
	repos *store.Repositories,
	clients Clients,
	publisher events.Publisher,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	validator := validators.NewStructValidator()

	appInfo, err := NewAppInfoService(build, logger)
	if err != nil {
		return nil, err
	}

	auth := NewAuthValidationService(validator).
		Wrap(NewAuthService(repos.UserRepository, crypto.NewPasswordHasher(), publisher, cfg.App, logger))

	movies := NewCatalogValidationService[models.Movie, models.CreateMovie, models.UpdateMovie, models.CatalogFilter](validator).
		Wrap(NewMovieService(repos.MovieRepository, publisher, logger))
	series := NewCatalogValidationService[models.Series, models.CreateSeries, models.UpdateSeries, models.CatalogFilter](validator).
		Wrap(NewSeriesService(repos.SeriesRepository, publisher, logger))
	collections := NewCatalogValidationService[models.Collection, models.CreateCollection, models.UpdateCollection, models.CollectionFilter](validator).
		Wrap(NewCollectionService(repos.CollectionRepository, publisher, logger))

	items := NewCollectionItemValidationService(validator).
		Wrap(NewCollectionItemService(repos.CollectionItemRepository, repos.CollectionRepository, repos.MovieRepository, repos.SeriesRepository, logger))

	metadata := NewMetadataService(clients.TMDB, repos.UserRepository, movies, series, logger)

	return &Services{
		AuthService:           auth,
		MovieService:          movies,
		SeriesService:         series,
		CollectionService:     collections,
		CollectionItemService: items,
		ImportService:         NewImportService(repos.MovieRepository, repos.SeriesRepository, repos.CollectionRepository, validator, publisher, logger),
		SettingsService:       NewSettingsService(repos.SettingRepository, clients.TMDB, logger),
		ScanService:           NewScanService(clients.Barcode, clients.TMDB, metadata, logger),
		MetadataService:       metadata,
		AppInfoService:        appInfo,
	}, nil
}
