package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/my-movies/internal/service"
	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
)

// catalogRoutes serves the CRUD and duplicate endpoints shared by movies,
// series and collections.
type catalogRoutes[T, C, P, F any] struct {
	service service.CatalogService[T, C, P, F]
	filter  func(*http.Request) (F, error)
}

func newCatalogRoutes[T, C, P, F any](svc service.CatalogService[T, C, P, F], filter func(*http.Request) (F, error)) catalogRoutes[T, C, P, F] {
	return catalogRoutes[T, C, P, F]{service: svc, filter: filter}
}

// mount registers the shared routes. extra adds entity specific routes
// below /{id}.
func (c catalogRoutes[T, C, P, F]) mount(r chi.Router, extra func(chi.Router)) {
	r.Get("/", c.list)
	r.Post("/", c.create)
	r.Get("/check-duplicates", c.checkDuplicates)
	r.Get("/duplicates", c.duplicates)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", c.get)
		r.Put("/", c.update)
		r.Delete("/", c.delete)
		if extra != nil {
			extra(r)
		}
	})
}

func (c catalogRoutes[T, C, P, F]) list(w http.ResponseWriter, r *http.Request) {
	filter, err := c.filter(r)
	if err != nil {
		writeError(w, r, err, "catalogRoutes.list")
		return
	}

	page, err := c.service.List(r.Context(), userIDOf(r), filter)
	if err != nil {
		writeError(w, r, err, "catalogRoutes.list")
		return
	}
	if page.Items == nil {
		page.Items = []T{}
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (c catalogRoutes[T, C, P, F]) create(w http.ResponseWriter, r *http.Request) {
	var input C
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, "catalogRoutes.create")
		return
	}

	created, err := c.service.Create(r.Context(), userIDOf(r), input)
	if err != nil {
		writeError(w, r, err, "catalogRoutes.create")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (c catalogRoutes[T, C, P, F]) get(w http.ResponseWriter, r *http.Request) {
	found, err := c.service.Get(r.Context(), userIDOf(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "catalogRoutes.get")
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

func (c catalogRoutes[T, C, P, F]) update(w http.ResponseWriter, r *http.Request) {
	var patch P
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, err, "catalogRoutes.update")
		return
	}

	updated, err := c.service.Update(r.Context(), userIDOf(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err, "catalogRoutes.update")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (c catalogRoutes[T, C, P, F]) delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), userIDOf(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "catalogRoutes.delete")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c catalogRoutes[T, C, P, F]) checkDuplicates(w http.ResponseWriter, r *http.Request) {
	query, err := duplicateQueryFrom(r)
	if err != nil {
		writeError(w, r, err, "catalogRoutes.checkDuplicates")
		return
	}

	found, err := c.service.FindDuplicates(r.Context(), userIDOf(r), query)
	if err != nil {
		writeError(w, r, err, "catalogRoutes.checkDuplicates")
		return
	}
	if found == nil {
		found = []T{}
	}

	utils.WriteJSON(w, models.DuplicateCheck[T]{HasDuplicates: len(found) > 0, Duplicates: found}, http.StatusOK)
}

func (c catalogRoutes[T, C, P, F]) duplicates(w http.ResponseWriter, r *http.Request) {
	groups, err := c.service.FindAllDuplicates(r.Context(), userIDOf(r))
	if err != nil {
		writeError(w, r, err, "catalogRoutes.duplicates")
		return
	}
	if groups == nil {
		groups = [][]T{}
	}

	utils.WriteJSON(w, models.DuplicateGroups[T]{Groups: groups, TotalGroups: len(groups)}, http.StatusOK)
}
