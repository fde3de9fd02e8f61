package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/my-movies/internal/events"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/internal/validators"
	"github.com/MKhiriev/my-movies/models"
)

// Row type tags of the "Type" column. Anything else imports as a movie.
const (
	importTypeSeries     = "series"
	importTypeCollection = "collection"
)

// headerAliases maps normalized spreadsheet headers to the column names used
// by the importer.
var headerAliases = map[string]string{
	"name":            "title",
	"ean":             "barcode",
	"upc":             "barcode",
	"tmdb":            "tmdb_id",
	"imdb":            "imdb_id",
	"year":            "production_year",
	"runtime":         "running_time",
	"length":          "running_time",
	"overview":        "description",
	"plot":            "description",
	"format":          "disc_type",
	"media_type":      "disc_type",
	"region":          "region_codes",
	"rating":          "personal_rating",
	"my_rating":       "personal_rating",
	"tmdb_rating":     "rating_tmdb",
	"genre":           "genres",
	"category":        "categories",
	"tag":             "tags",
	"seen":            "watched",
	"3d":              "is_3d",
	"4k":              "is_4k",
	"slipcover":       "has_slipcover",
	"price":           "purchase_price",
	"currency":        "purchase_currency",
	"store":           "purchase_place",
	"value":           "value_price",
	"episodes":        "episode_count",
	"group":           "movie_group",
	"collection_name": "movie_group",
}

// importService turns spreadsheet exports into catalog entries.
type importService struct {
	movies      store.MovieRepository
	series      store.SeriesRepository
	collections store.CollectionRepository
	validator   validators.Validator
	publisher   events.Publisher

	logger *logger.Logger
}

func NewImportService(
	movies store.MovieRepository,
	series store.SeriesRepository,
	collections store.CollectionRepository,
	validator validators.Validator,
	publisher events.Publisher,
	logger *logger.Logger,
) ImportService {
	return &importService{
		movies:      movies,
		series:      series,
		collections: collections,
		validator:   validator,
		publisher:   publisher,
		logger:      logger,
	}
}

// ImportCSV implements [ImportService]. Rows are numbered like spreadsheet
// lines: the header is row 1, the first data row is row 2.
func (s *importService) ImportCSV(ctx context.Context, userID string, r io.Reader) (models.ImportResult, error) {
	log := logger.FromContext(ctx)
	result := models.ImportResult{Errors: []string{}}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return result, validationError("CSV file is empty")
	}
	if err != nil {
		return result, validationError("invalid CSV header: %v", err)
	}
	columns := normalizeHeader(header)

	for row := 2; ; row++ {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Parse error - %v", row, parseErr.Err))
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "*importService.ImportCSV").Msg("reading CSV failed")
			return result, validationError("reading CSV failed: %v", err)
		}

		values := newCSVRow(columns, record)
		title := values.str("title")
		if title == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Missing title", row))
			continue
		}

		kind := strings.ToLower(strings.TrimSpace(values.raw("type")))
		if err = s.importRow(ctx, userID, kind, *title, values); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", row, importErrorMessage(err)))
			continue
		}

		switch kind {
		case importTypeSeries:
			result.SeriesImported++
		case importTypeCollection:
			result.CollectionsImported++
		default:
			result.MoviesImported++
		}
	}

	log.Info().
		Str("user_id", userID).
		Int("movies", result.MoviesImported).
		Int("series", result.SeriesImported).
		Int("collections", result.CollectionsImported).
		Int("errors", len(result.Errors)).
		Msg("CSV import finished")

	if s.publisher != nil {
		payload := events.Imported{
			Movies:      result.MoviesImported,
			Series:      result.SeriesImported,
			Collections: result.CollectionsImported,
			Errors:      len(result.Errors),
		}
		if err = s.publisher.Publish(ctx, userID, events.CollectionImported, payload); err != nil {
			log.Err(err).Str("func", "*importService.ImportCSV").Msg("event not published")
		}
	}

	return result, nil
}

func (s *importService) importRow(ctx context.Context, userID, kind, title string, values csvRow) error {
	switch kind {
	case importTypeSeries:
		input := models.CreateSeries{Title: title, SeriesDetails: values.seriesDetails()}
		if err := s.validator.Validate(ctx, input); err != nil {
			return err
		}
		_, err := s.series.Create(ctx, userID, input)
		return err
	case importTypeCollection:
		input := models.CreateCollection{Title: title, CollectionDetails: values.collectionDetails()}
		if err := s.validator.Validate(ctx, input); err != nil {
			return err
		}
		_, err := s.collections.Create(ctx, userID, input)
		return err
	default:
		input := models.CreateMovie{Title: title, MovieDetails: values.movieDetails()}
		if err := s.validator.Validate(ctx, input); err != nil {
			return err
		}
		_, err := s.movies.Create(ctx, userID, input)
		return err
	}
}

func importErrorMessage(err error) string {
	err = mapError(err, ErrNotFound)
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrDuplicate) {
		return err.Error()
	}
	return "Database error"
}

func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		h = strings.ToLower(strings.TrimSpace(h))
		h = strings.NewReplacer(" ", "_", "-", "_", ".", "").Replace(h)
		if alias, ok := headerAliases[h]; ok {
			h = alias
		}
		columns[i] = h
	}
	return columns
}

// csvRow is one record keyed by normalized column name. Short records
// simply lack the trailing columns.
type csvRow map[string]string

func newCSVRow(columns, record []string) csvRow {
	row := make(csvRow, len(columns))
	for i, col := range columns {
		if i >= len(record) {
			break
		}
		if _, seen := row[col]; seen && row[col] != "" {
			continue
		}
		row[col] = record[i]
	}
	return row
}

func (r csvRow) raw(key string) string {
	return r[key]
}

// str returns the trimmed value or nil when the column is absent or blank.
func (r csvRow) str(key string) *string {
	v := strings.TrimSpace(r[key])
	if v == "" {
		return nil
	}
	return &v
}

func (r csvRow) integer(key string) *int64 {
	return parseInt(r.str(key))
}

func (r csvRow) float(key string) *float64 {
	return parseFloat(r.str(key))
}

func (r csvRow) boolean(key string) *bool {
	v := r.str(key)
	if v == nil {
		return nil
	}
	b := parseBool(*v)
	return &b
}

// parseInt returns nil for anything that is not a base-10 integer.
func parseInt(s *string) *int64 {
	if s == nil {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(*s), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// parseFloat accepts both "7.5" and the European "7,5".
func parseFloat(s *string) *float64 {
	if s == nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(*s), ",", "."), 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseBool is true for "true", "yes", "1" and "ja" in any case.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "ja":
		return true
	default:
		return false
	}
}

func (r csvRow) identifiers() models.Identifiers {
	return models.Identifiers{
		Barcode:       r.str("barcode"),
		TMDBID:        r.integer("tmdb_id"),
		IMDbID:        r.str("imdb_id"),
		OriginalTitle: r.str("original_title"),
		SortTitle:     r.str("sort_title"),
		PersonalTitle: r.str("personal_title"),
	}
}

func (r csvRow) production() models.Production {
	return models.Production{
		Description:         r.str("description"),
		Tagline:             r.str("tagline"),
		ProductionYear:      r.integer("production_year"),
		ReleaseDate:         r.str("release_date"),
		RunningTime:         r.integer("running_time"),
		Actors:              r.str("actors"),
		ProductionCompanies: r.str("production_companies"),
		ProductionCountries: r.str("production_countries"),
		Studios:             r.str("studios"),
		RatingTMDB:          r.float("rating_tmdb"),
		PersonalRating:      r.float("personal_rating"),
		Genres:              r.str("genres"),
		Categories:          r.str("categories"),
		Tags:                r.str("tags"),
		Watched:             r.boolean("watched"),
		PosterPath:          r.str("poster_path"),
		BackdropPath:        r.str("backdrop_path"),
	}
}

func (r csvRow) mediaInfo() models.MediaInfo {
	return models.MediaInfo{
		DiscType:      r.str("disc_type"),
		RegionCodes:   r.str("region_codes"),
		VideoStandard: r.str("video_standard"),
		AspectRatio:   r.str("aspect_ratio"),
		AudioTracks:   r.str("audio_tracks"),
		Subtitles:     r.str("subtitles"),
		Is3D:          r.boolean("is_3d"),
		Is4K:          r.boolean("is_4k"),
	}
}

func (r csvRow) ownership() models.Ownership {
	return models.Ownership{
		Condition:        r.str("condition"),
		HasSlipcover:     r.boolean("has_slipcover"),
		CoverType:        r.str("cover_type"),
		Edition:          r.str("edition"),
		PurchaseDate:     r.str("purchase_date"),
		PurchasePrice:    r.float("purchase_price"),
		PurchaseCurrency: r.str("purchase_currency"),
		PurchasePlace:    r.str("purchase_place"),
		ValueDate:        r.str("value_date"),
		ValuePrice:       r.float("value_price"),
		ValueCurrency:    r.str("value_currency"),
		LentTo:           r.str("lent_to"),
		LentDue:          r.str("lent_due"),
		Location:         r.str("location"),
		Notes:            r.str("notes"),
	}
}

func (r csvRow) movieDetails() models.MovieDetails {
	return models.MovieDetails{
		Identifiers: r.identifiers(),
		Production:  r.production(),
		MediaInfo:   r.mediaInfo(),
		Ownership:   r.ownership(),
		Director:    r.str("director"),
		MovieGroup:  r.str("movie_group"),
		Budget:      r.integer("budget"),
		Revenue:     r.integer("revenue"),
	}
}

func (r csvRow) seriesDetails() models.SeriesDetails {
	return models.SeriesDetails{
		Identifiers:  r.identifiers(),
		Production:   r.production(),
		MediaInfo:    r.mediaInfo(),
		Ownership:    r.ownership(),
		FirstAired:   r.str("first_aired"),
		AirTime:      r.str("air_time"),
		Network:      r.str("network"),
		EpisodeCount: r.integer("episode_count"),
		Status:       r.str("status"),
		SeriesGroup:  r.str("series_group"),
	}
}

func (r csvRow) collectionDetails() models.CollectionDetails {
	return models.CollectionDetails{
		Barcode:       r.str("barcode"),
		TMDBID:        r.integer("tmdb_id"),
		OriginalTitle: r.str("original_title"),
		SortTitle:     r.str("sort_title"),
		Description:   r.str("description"),
		PosterPath:    r.str("poster_path"),
		MediaInfo:     r.mediaInfo(),
		Ownership:     r.ownership(),
	}
}
