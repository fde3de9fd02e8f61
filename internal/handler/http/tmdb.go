package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
)

func (h *Handler) searchTMDBMovies(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	query, year := q.raw("query"), q.Int("year")
	if q.err != nil {
		writeError(w, r, q.err, "*Handler.searchTMDBMovies")
		return
	}

	results, err := h.services.MetadataService.SearchMovies(r.Context(), userIDOf(r), query, year)
	if err != nil {
		writeError(w, r, err, "*Handler.searchTMDBMovies")
		return
	}
	if results == nil {
		results = []models.TMDBMovieResult{}
	}

	utils.WriteJSON(w, results, http.StatusOK)
}

func (h *Handler) searchTMDBTV(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	query, year := q.raw("query"), q.Int("year")
	if q.err != nil {
		writeError(w, r, q.err, "*Handler.searchTMDBTV")
		return
	}

	results, err := h.services.MetadataService.SearchTV(r.Context(), userIDOf(r), query, year)
	if err != nil {
		writeError(w, r, err, "*Handler.searchTMDBTV")
		return
	}
	if results == nil {
		results = []models.TMDBTVResult{}
	}

	utils.WriteJSON(w, results, http.StatusOK)
}

func (h *Handler) getTMDBMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "tmdbID")
	if err != nil {
		writeError(w, r, err, "*Handler.getTMDBMovie")
		return
	}

	details, err := h.services.MetadataService.GetMovie(r.Context(), userIDOf(r), id)
	if err != nil {
		writeError(w, r, err, "*Handler.getTMDBMovie")
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) getTMDBTV(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "tmdbID")
	if err != nil {
		writeError(w, r, err, "*Handler.getTMDBTV")
		return
	}

	details, err := h.services.MetadataService.GetTV(r.Context(), userIDOf(r), id)
	if err != nil {
		writeError(w, r, err, "*Handler.getTMDBTV")
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) searchTMDBCollections(w http.ResponseWriter, r *http.Request) {
	results, err := h.services.MetadataService.SearchCollections(r.Context(), userIDOf(r), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, r, err, "*Handler.searchTMDBCollections")
		return
	}
	if results == nil {
		results = []models.TMDBCollectionResult{}
	}

	utils.WriteJSON(w, results, http.StatusOK)
}

func (h *Handler) getTMDBCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "tmdbID")
	if err != nil {
		writeError(w, r, err, "*Handler.getTMDBCollection")
		return
	}

	details, err := h.services.MetadataService.GetCollection(r.Context(), userIDOf(r), id)
	if err != nil {
		writeError(w, r, err, "*Handler.getTMDBCollection")
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) refreshMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.services.MetadataService.RefreshMovie(r.Context(), userIDOf(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.refreshMovie")
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) refreshSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.services.MetadataService.RefreshSeries(r.Context(), userIDOf(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.refreshSeries")
		return
	}

	utils.WriteJSON(w, series, http.StatusOK)
}

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	var req models.ScanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.scan")
		return
	}

	result, err := h.services.ScanService.Scan(r.Context(), userIDOf(r), req)
	if err != nil {
		writeError(w, r, err, "*Handler.scan")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
