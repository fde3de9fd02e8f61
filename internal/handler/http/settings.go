package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
)

func (h *Handler) listSettings(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.services.SettingsService.Status(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listSettings")
		return
	}

	utils.WriteJSON(w, statuses, http.StatusOK)
}

func (h *Handler) updateSetting(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.updateSetting")
		return
	}

	status, err := h.services.SettingsService.Update(r.Context(), chi.URLParam(r, "key"), req)
	if err != nil {
		writeError(w, r, err, "*Handler.updateSetting")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) testTMDBConnection(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.SettingsService.TestTMDBConnection(r.Context()), http.StatusOK)
}
