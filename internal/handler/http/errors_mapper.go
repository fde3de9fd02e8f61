package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/my-movies/internal/app"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/service"
	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/internal/workers"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrDuplicate:          http.StatusBadRequest,
	service.ErrInvalidResetToken:  http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrTokenExpired:       http.StatusUnauthorized,
	service.ErrInvalidToken:       http.StatusUnauthorized,
	service.ErrForbidden:          http.StatusForbidden,
	service.ErrNotFound:           http.StatusNotFound,
	service.ErrUserNotFound:       http.StatusNotFound,

	service.ErrExternalAPI:   http.StatusInternalServerError,
	service.ErrConfiguration: http.StatusInternalServerError,
	service.ErrUnavailable:   http.StatusInternalServerError,
	service.ErrInternal:      http.StatusInternalServerError,

	workers.ErrJobRunning:        http.StatusConflict,
	workers.ErrCatalogUnreadable: http.StatusInternalServerError,

	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidQuery:     http.StatusBadRequest,
	ErrMissingFile:      http.StatusBadRequest,
	ErrUnsupportedImage: http.StatusBadRequest,
	ErrUploadTooLarge:   http.StatusRequestEntityTooLarge,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text shown to the client. Provider and
// configuration failures keep their message, other server-side failures
// are replaced by a generic one.
func messageFromError(err error, status int) string {
	switch {
	case errors.Is(err, service.ErrExternalAPI), errors.Is(err, service.ErrConfiguration):
		return err.Error()
	case errors.Is(err, service.ErrUnavailable):
		return app.MsgDatabaseUnavailable
	case status >= http.StatusInternalServerError:
		return app.MsgInternalServerError
	default:
		return err.Error()
	}
}

// writeError renders err as {"error": "..."} with the status of errorStatusMap.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, status), status)
}
