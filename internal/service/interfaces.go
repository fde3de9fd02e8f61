// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business rules of the catalog: accounts
// and sessions, the per-user movie, series and collection catalogs, CSV
// import, runtime settings, barcode scanning and metadata refresh.
//
// Every catalog operation takes the caller's user ID and never touches rows
// of another user; a foreign row is reported as [ErrNotFound]. Errors of the
// lower layers are translated by mapError so that the transport layer only
// needs to know the sentinels of this package.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/my-movies/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	// VerifyToken returns the claims of a valid session token, [ErrTokenExpired]
	// past its expiry or [ErrInvalidToken] otherwise.
	VerifyToken(ctx context.Context, token string) (models.Claims, error)
	Me(ctx context.Context, userID string) (models.User, error)
	UpdatePreferences(ctx context.Context, userID string, req models.UpdatePreferencesRequest) (models.User, error)

	RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) (models.MessageResponse, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUserRole refuses to change actorID's own role.
	UpdateUserRole(ctx context.Context, actorID, userID string, req models.UpdateRoleRequest) (models.User, error)
	// DeleteUser refuses to delete actorID's own account.
	DeleteUser(ctx context.Context, actorID, userID string) error
	AdminSetPassword(ctx context.Context, userID string, req models.SetPasswordRequest) error
	AdminCreateUser(ctx context.Context, req models.AdminCreateUserRequest) (models.AdminCreateUserResponse, error)
}

// CatalogService is the user-scoped CRUD of one catalog entity family.
type CatalogService[T, C, P, F any] interface {
	Create(ctx context.Context, userID string, input C) (T, error)
	Get(ctx context.Context, userID, id string) (T, error)
	List(ctx context.Context, userID string, filter F) (models.Page[T], error)
	Count(ctx context.Context, userID string, filter F) (int64, error)
	Update(ctx context.Context, userID, id string, patch P) (T, error)
	Delete(ctx context.Context, userID, id string) error

	// FindDuplicates looks for entries matching q by barcode, then by TMDB
	// id, then by title.
	FindDuplicates(ctx context.Context, userID string, q models.DuplicateQuery) ([]T, error)
	// FindAllDuplicates groups the whole catalog by shared barcode, TMDB id
	// or case-insensitive title. Singletons are omitted.
	FindAllDuplicates(ctx context.Context, userID string) ([][]T, error)
}

type (
	MovieService      = CatalogService[models.Movie, models.CreateMovie, models.UpdateMovie, models.CatalogFilter]
	SeriesService     = CatalogService[models.Series, models.CreateSeries, models.UpdateSeries, models.CatalogFilter]
	CollectionService = CatalogService[models.Collection, models.CreateCollection, models.UpdateCollection, models.CollectionFilter]
)

type CollectionItemService interface {
	AddItem(ctx context.Context, userID, collectionID string, req models.AddCollectionItem) (models.CollectionItem, error)
	ListItems(ctx context.Context, userID, collectionID string) ([]models.CollectionItem, error)
	RemoveItem(ctx context.Context, userID, collectionID, itemID string) error
}

type ImportService interface {
	// ImportCSV inserts one catalog entry per data row. Row failures are
	// collected in the result and do not abort the import.
	ImportCSV(ctx context.Context, userID string, r io.Reader) (models.ImportResult, error)
}

type SettingsService interface {
	// Get returns the effective value of key: the environment variable when
	// set and non-empty, else the stored value. ok is false when neither exists.
	Get(ctx context.Context, key models.SettingKey) (value string, ok bool, err error)
	// GetRequired is Get with a missing value reported as [ErrConfiguration].
	GetRequired(ctx context.Context, key models.SettingKey) (string, error)
	Update(ctx context.Context, rawKey string, req models.UpdateSettingRequest) (models.SettingStatus, error)
	Status(ctx context.Context) ([]models.SettingStatus, error)
	TestTMDBConnection(ctx context.Context) models.ConnectionTestResult
}

type ScanService interface {
	Scan(ctx context.Context, userID string, req models.ScanRequest) (models.ScanResult, error)
}

// MetadataService proxies TMDB lookups and refreshes catalog entries from them.
type MetadataService interface {
	SearchMovies(ctx context.Context, userID, query string, year *int64) ([]models.TMDBMovieResult, error)
	SearchTV(ctx context.Context, userID, query string, year *int64) ([]models.TMDBTVResult, error)
	GetMovie(ctx context.Context, userID string, tmdbID int64) (models.TMDBMovieDetails, error)
	GetTV(ctx context.Context, userID string, tmdbID int64) (models.TMDBTVDetails, error)
	// SearchCollections and GetCollection look up TMDB's own movie
	// collections, e.g. to name a box-set after the franchise.
	SearchCollections(ctx context.Context, userID, query string) ([]models.TMDBCollectionResult, error)
	GetCollection(ctx context.Context, userID string, tmdbID int64) (models.TMDBCollectionDetails, error)

	RefreshMovie(ctx context.Context, userID, movieID string) (models.Movie, error)
	RefreshSeries(ctx context.Context, userID, seriesID string) (models.Series, error)

	// RefreshMovieEntry is the per-item step of the enrichment job. A movie
	// TMDB does not know yields [models.RefreshNotFound] and no error.
	RefreshMovieEntry(ctx context.Context, movie models.Movie, opts models.RefreshOptions) (models.Movie, models.RefreshOutcome, error)
	// RefreshOptionsFor reads the lookup preferences of userID.
	RefreshOptionsFor(ctx context.Context, userID string, force bool) models.RefreshOptions
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService, e.g. with input validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
