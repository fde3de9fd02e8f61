package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
)

func (h *Handler) listCollectionItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.CollectionItemService.ListItems(r.Context(), userIDOf(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.listCollectionItems")
		return
	}
	if items == nil {
		items = []models.CollectionItem{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) addCollectionItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddCollectionItem
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.addCollectionItem")
		return
	}

	item, err := h.services.CollectionItemService.AddItem(r.Context(), userIDOf(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, "*Handler.addCollectionItem")
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) removeCollectionItem(w http.ResponseWriter, r *http.Request) {
	err := h.services.CollectionItemService.RemoveItem(r.Context(), userIDOf(r), chi.URLParam(r, "id"), chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(w, r, err, "*Handler.removeCollectionItem")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
