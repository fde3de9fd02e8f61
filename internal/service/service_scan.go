package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/my-movies/internal/adapter"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/models"
)

// maxScanMatches caps the TMDB suggestions returned by a scan.
const maxScanMatches = 5

type scanService struct {
	barcode  adapter.BarcodeClient
	tmdb     adapter.TMDBClient
	metadata MetadataService

	logger *logger.Logger
}

// NewScanService resolves barcodes with barcode and suggests TMDB matches for
// the product title. metadata supplies the caller's lookup preferences.
func NewScanService(barcode adapter.BarcodeClient, tmdb adapter.TMDBClient, metadata MetadataService, logger *logger.Logger) ScanService {
	return &scanService{barcode: barcode, tmdb: tmdb, metadata: metadata, logger: logger}
}

// Scan implements [ScanService]. The TMDB suggestions are best effort: a
// missing API key or a provider failure yields an empty list, not an error.
func (s *scanService) Scan(ctx context.Context, userID string, req models.ScanRequest) (models.ScanResult, error) {
	log := logger.FromContext(ctx)

	digits := adapter.DigitsOnly(req.Barcode)
	validEAN := adapter.ValidateEAN13(digits)
	if len(digits) == 13 && !validEAN {
		log.Warn().Str("func", "*scanService.Scan").Str("barcode", digits).Msg("EAN-13 check digit mismatch, looking it up anyway")
	}

	product, err := s.barcode.Lookup(ctx, digits)
	if err != nil {
		log.Err(err).Str("func", "*scanService.Scan").Str("barcode", digits).Msg("barcode lookup failed")
		return models.ScanResult{}, mapError(err, ErrNotFound)
	}
	if product == nil {
		return models.ScanResult{}, fmt.Errorf("%w: no product registered for barcode %s", ErrNotFound, digits)
	}

	result := models.ScanResult{
		Barcode:     digits,
		Title:       product.Title,
		Vendor:      product.Vendor,
		Category:    product.Category,
		ValidEAN13:  validEAN,
		TMDBResults: []models.TMDBMovieResult{},
	}
	if product.Title == "" {
		return result, nil
	}

	opts := s.metadata.RefreshOptionsFor(ctx, userID, false)
	matches, err := s.tmdb.SearchMovies(ctx, models.TMDBSearchQuery{
		Query:        product.Title,
		Language:     opts.Language,
		IncludeAdult: opts.IncludeAdult,
		MaxPages:     1,
	})
	switch {
	case errors.Is(err, adapter.ErrNotConfigured):
		log.Debug().Msg("TMDB not configured, scan returns no suggestions")
	case err != nil:
		log.Warn().Err(err).Str("func", "*scanService.Scan").Msg("TMDB search failed, scan returns no suggestions")
	default:
		if len(matches) > maxScanMatches {
			matches = matches[:maxScanMatches]
		}
		result.TMDBResults = append(result.TMDBResults, matches...)
	}

	return result, nil
}
