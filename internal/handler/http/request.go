package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
)

// maxJSONBody caps JSON request bodies.
const maxJSONBody = 1 << 20

// decodeJSON reads the request body into dst. An empty body decodes to the
// zero value so that validation reports the missing fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(body).Decode(dst); err != nil && err != io.EOF {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// userIDOf returns the caller's user ID stored by sessionGate.
func userIDOf(r *http.Request) string {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return userID
}

func pathInt(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidQuery, name)
	}
	return v, nil
}

// queryReader collects the first conversion error so that handlers can read
// every parameter and check once.
type queryReader struct {
	values map[string][]string
	err    error
}

func newQueryReader(r *http.Request) *queryReader {
	return &queryReader{values: r.URL.Query()}
}

func (q *queryReader) raw(name string) string {
	if v := q.values[name]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func (q *queryReader) fail(name, kind string) {
	if q.err == nil {
		q.err = fmt.Errorf("%w: %s must be %s", ErrInvalidQuery, name, kind)
	}
}

func (q *queryReader) String(name string) *string {
	v := q.raw(name)
	if v == "" {
		return nil
	}
	return &v
}

func (q *queryReader) Int(name string) *int64 {
	v := q.raw(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		q.fail(name, "an integer")
		return nil
	}
	return &n
}

func (q *queryReader) Uint(name string) uint64 {
	v := q.raw(name)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		q.fail(name, "a non-negative integer")
		return 0
	}
	return n
}

func (q *queryReader) Bool(name string) *bool {
	v := q.raw(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.fail(name, "a boolean")
		return nil
	}
	return &b
}

func (q *queryReader) listOptions() models.ListOptions {
	return models.ListOptions{
		SortBy:    q.raw("sort_by"),
		SortOrder: strings.ToLower(q.raw("sort_order")),
		Limit:     q.Uint("limit"),
		Offset:    q.Uint("offset"),
	}
}

func catalogFilterFrom(r *http.Request) (models.CatalogFilter, error) {
	q := newQueryReader(r)
	filter := models.CatalogFilter{
		Search:      q.String("search"),
		Genre:       q.String("genre"),
		DiscType:    q.String("disc_type"),
		Watched:     q.Bool("watched"),
		YearFrom:    q.Int("year_from"),
		YearTo:      q.Int("year_to"),
		ListOptions: q.listOptions(),
	}
	return filter, q.err
}

func collectionFilterFrom(r *http.Request) (models.CollectionFilter, error) {
	q := newQueryReader(r)
	filter := models.CollectionFilter{
		Search:      q.String("search"),
		ListOptions: q.listOptions(),
	}
	return filter, q.err
}

func duplicateQueryFrom(r *http.Request) (models.DuplicateQuery, error) {
	q := newQueryReader(r)
	query := models.DuplicateQuery{
		Barcode: q.String("barcode"),
		TMDBID:  q.Int("tmdb_id"),
	}
	if title := q.String("title"); title != nil {
		query.Title = *title
	}
	return query, q.err
}
