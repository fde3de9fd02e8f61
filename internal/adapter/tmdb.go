package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/my-movies/internal/config"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
)

// TMDBImageBaseURL is the root of TMDB poster and backdrop images.
const TMDBImageBaseURL = "https://image.tmdb.org/t/p/"

// PosterURL builds the absolute image URL of a TMDB poster path
// (e.g. "/abc.jpg") for the given size (e.g. "w500", "original").
func PosterURL(path, size string) string {
	return TMDBImageBaseURL + size + path
}

type tmdbClient struct {
	client   *utils.HTTPClient
	cb       *gobreaker.CircuitBreaker[*resty.Response]
	language string

	mu     sync.RWMutex
	apiKey string

	logger *logger.Logger
}

// NewTMDBClient constructs a [TMDBClient] bound to cfg.TMDBBaseURL.
// apiKey may be empty; requests then fail with [ErrNotConfigured] until
// SetAPIKey is called.
func NewTMDBClient(cfg config.Adapter, apiKey string, log *logger.Logger) (TMDBClient, error) {
	baseURL, err := normalizeBaseURL(cfg.TMDBBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid TMDB base url: %w", err)
	}

	language := cfg.DefaultLanguage
	if language == "" {
		language = models.DefaultLanguage
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeader("Accept", "application/json")

	return &tmdbClient{
		client:   client,
		cb:       newBreaker("tmdb", log),
		language: language,
		apiKey:   strings.TrimSpace(apiKey),
		logger:   log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetAPIKey implements [TMDBClient].
func (t *tmdbClient) SetAPIKey(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.apiKey = strings.TrimSpace(key)
}

// APIKey implements [TMDBClient].
func (t *tmdbClient) APIKey() (string, error) {
	t.mu.RLock()
	key := t.apiKey
	t.mu.RUnlock()

	if key == "" {
		return "", ErrNotConfigured
	}
	return key, nil
}

type tmdbPage[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

type tmdbFindResult struct {
	MovieResults []models.TMDBMovieResult `json:"movie_results"`
}

// SearchMovies implements [TMDBClient].
func (t *tmdbClient) SearchMovies(ctx context.Context, q models.TMDBSearchQuery) ([]models.TMDBMovieResult, error) {
	return searchPaged[models.TMDBMovieResult](ctx, t, "/search/movie", "year", q)
}

// SearchTV implements [TMDBClient].
func (t *tmdbClient) SearchTV(ctx context.Context, q models.TMDBSearchQuery) ([]models.TMDBTVResult, error) {
	return searchPaged[models.TMDBTVResult](ctx, t, "/search/tv", "first_air_date_year", q)
}

func searchPaged[T any](ctx context.Context, t *tmdbClient, path, yearParam string, q models.TMDBSearchQuery) ([]T, error) {
	maxPages := q.MaxPages
	if maxPages < 1 {
		maxPages = 1
	}

	params := url.Values{}
	params.Set("query", q.Query)
	params.Set("language", t.lang(q.Language))
	params.Set("include_adult", strconv.FormatBool(q.IncludeAdult))
	if q.Year != nil {
		params.Set(yearParam, strconv.FormatInt(*q.Year, 10))
	}

	var results []T
	for page := 1; page <= maxPages; page++ {
		params.Set("page", strconv.Itoa(page))

		var p tmdbPage[T]
		if err := t.get(ctx, path, params, &p); err != nil {
			return nil, err
		}
		results = append(results, p.Results...)

		if len(p.Results) < models.TMDBPageSize {
			break
		}
	}

	if results == nil {
		results = []T{}
	}
	return results, nil
}

// FindByIMDbID implements [TMDBClient].
func (t *tmdbClient) FindByIMDbID(ctx context.Context, imdbID, language string) (*models.TMDBMovieResult, error) {
	params := url.Values{}
	params.Set("external_source", "imdb_id")
	params.Set("language", t.lang(language))

	var found tmdbFindResult
	if err := t.get(ctx, "/find/"+url.PathEscape(imdbID), params, &found); err != nil {
		return nil, err
	}
	if len(found.MovieResults) == 0 {
		return nil, nil
	}
	return &found.MovieResults[0], nil
}

// GetMovieDetails implements [TMDBClient].
func (t *tmdbClient) GetMovieDetails(ctx context.Context, id int64, language string) (models.TMDBMovieDetails, error) {
	var details models.TMDBMovieDetails
	err := t.get(ctx, "/movie/"+strconv.FormatInt(id, 10), t.langParams(language), &details)
	return details, err
}

// GetMovieCredits implements [TMDBClient].
func (t *tmdbClient) GetMovieCredits(ctx context.Context, id int64, language string) (models.TMDBCredits, error) {
	var credits models.TMDBCredits
	err := t.get(ctx, "/movie/"+strconv.FormatInt(id, 10)+"/credits", t.langParams(language), &credits)
	return credits, err
}

// GetTVDetails implements [TMDBClient].
func (t *tmdbClient) GetTVDetails(ctx context.Context, id int64, language string) (models.TMDBTVDetails, error) {
	var details models.TMDBTVDetails
	err := t.get(ctx, "/tv/"+strconv.FormatInt(id, 10), t.langParams(language), &details)
	return details, err
}

// GetTVCredits implements [TMDBClient].
func (t *tmdbClient) GetTVCredits(ctx context.Context, id int64, language string) (models.TMDBCredits, error) {
	var credits models.TMDBCredits
	err := t.get(ctx, "/tv/"+strconv.FormatInt(id, 10)+"/credits", t.langParams(language), &credits)
	return credits, err
}

// SearchCollections implements [TMDBClient].
func (t *tmdbClient) SearchCollections(ctx context.Context, query, language string) ([]models.TMDBCollectionResult, error) {
	params := t.langParams(language)
	params.Set("query", query)

	var p tmdbPage[models.TMDBCollectionResult]
	if err := t.get(ctx, "/search/collection", params, &p); err != nil {
		return nil, err
	}
	if p.Results == nil {
		p.Results = []models.TMDBCollectionResult{}
	}
	return p.Results, nil
}

// GetCollectionDetails implements [TMDBClient].
func (t *tmdbClient) GetCollectionDetails(ctx context.Context, id int64, language string) (models.TMDBCollectionDetails, error) {
	var details models.TMDBCollectionDetails
	err := t.get(ctx, "/collection/"+strconv.FormatInt(id, 10), t.langParams(language), &details)
	return details, err
}

func (t *tmdbClient) lang(language string) string {
	if language == "" {
		return t.language
	}
	return language
}

func (t *tmdbClient) langParams(language string) url.Values {
	params := url.Values{}
	params.Set("language", t.lang(language))
	return params
}

// get performs one GET through the circuit breaker and decodes the JSON
// body into out. The key is read once per request.
func (t *tmdbClient) get(ctx context.Context, path string, params url.Values, out any) error {
	key, err := t.APIKey()
	if err != nil {
		return err
	}

	resp, err := execute(t.cb, func() (*resty.Response, error) {
		resp, err := t.client.R().
			SetContext(ctx).
			SetQueryParamsFromValues(params).
			SetQueryParam("api_key", key).
			Get(path)
		if err != nil {
			return nil, mapTransportError("GET "+path, err)
		}
		return resp, mapHTTPError(resp)
	})
	if err != nil {
		t.logger.Debug().Err(err).Str("func", "*tmdbClient.get").Str("path", path).Msg("TMDB request failed")
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrExternalAPI, path, err)
	}
	return nil
}
