package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/my-movies/internal/app"
	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
)

// maxImportSize caps CSV uploads.
const maxImportSize = 16 << 20

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, uploadError(err), "*Handler.importCSV")
		return
	}
	defer file.Close()

	result, err := h.services.ImportService.ImportCSV(r.Context(), userIDOf(r), file)
	if err != nil {
		writeError(w, r, err, "*Handler.importCSV")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// startEnrichment answers 202 when a run was started and 200 when every
// movie already has TMDB data.
func (h *Handler) startEnrichment(w http.ResponseWriter, r *http.Request) {
	q := newQueryReader(r)
	force := q.Bool("force")
	if q.err != nil {
		writeError(w, r, q.err, "*Handler.startEnrichment")
		return
	}

	start, err := h.enricher.Start(r.Context(), userIDOf(r), force != nil && *force)
	if err != nil {
		writeError(w, r, err, "*Handler.startEnrichment")
		return
	}

	status := http.StatusOK
	if start.Started {
		status = http.StatusAccepted
	}
	utils.WriteJSON(w, start, status)
}

func (h *Handler) enrichmentStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.enricher.Status(), http.StatusOK)
}

func (h *Handler) cancelEnrichment(w http.ResponseWriter, r *http.Request) {
	msg := app.MsgEnrichNotRunning
	if h.enricher.Cancel() {
		msg = app.MsgEnrichCancelRequested
	}
	utils.WriteJSON(w, models.MessageResponse{Message: msg}, http.StatusOK)
}

// uploadError classifies a failed multipart read.
func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return ErrUploadTooLarge
	default:
		return ErrMissingFile
	}
}
