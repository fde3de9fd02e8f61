// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter contains the clients of the external providers used by
// the catalog: The Movie Database (TMDB) for metadata and an open barcode
// registry for EAN lookups.
//
// Every provider failure is reported as [ErrExternalAPI]; HTTP statuses
// are mapped by mapHTTPError so that callers can additionally match
// [ErrNotFound], [ErrUnauthorized] or [ErrRateLimited] with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/my-movies/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TMDBClient is the metadata provider client. The API key may be replaced at
// runtime with SetAPIKey; in-flight requests keep the key they started with.
type TMDBClient interface {
	// SetAPIKey replaces the API key used by subsequent requests.
	SetAPIKey(key string)

	// APIKey returns the current key or [ErrNotConfigured] when it is empty.
	APIKey() (string, error)

	// SearchMovies requests result pages until q.MaxPages is reached or a
	// page holds fewer than [models.TMDBPageSize] results.
	SearchMovies(ctx context.Context, q models.TMDBSearchQuery) ([]models.TMDBMovieResult, error)

	// FindByIMDbID resolves an IMDb id. It returns nil without error when
	// TMDB knows no movie with that id.
	FindByIMDbID(ctx context.Context, imdbID, language string) (*models.TMDBMovieResult, error)

	GetMovieDetails(ctx context.Context, id int64, language string) (models.TMDBMovieDetails, error)
	GetMovieCredits(ctx context.Context, id int64, language string) (models.TMDBCredits, error)

	SearchTV(ctx context.Context, q models.TMDBSearchQuery) ([]models.TMDBTVResult, error)
	GetTVDetails(ctx context.Context, id int64, language string) (models.TMDBTVDetails, error)
	GetTVCredits(ctx context.Context, id int64, language string) (models.TMDBCredits, error)

	SearchCollections(ctx context.Context, query, language string) ([]models.TMDBCollectionResult, error)
	GetCollectionDetails(ctx context.Context, id int64, language string) (models.TMDBCollectionDetails, error)
}

// BarcodeClient resolves EAN/UPC codes to product titles.
type BarcodeClient interface {
	// Lookup returns the product registered for barcode, or nil when the
	// registry does not know it. Non-digit characters are ignored; a
	// barcode without digits yields [ErrInvalidBarcode].
	Lookup(ctx context.Context, barcode string) (*models.BarcodeProduct, error)
}
