package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
)

const (
	// maxPosterSize caps poster uploads.
	maxPosterSize = 10 << 20

	// posterURLPrefix is where uploaded posters are served from.
	posterURLPrefix = "/uploads/posters/"
)

// posterExtensions maps sniffed content types to file extensions.
var posterExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// PosterResponse is the body of a successful poster upload.
type PosterResponse struct {
	PosterPath string `json:"poster_path"`
}

func (h *Handler) uploadPoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := userIDOf(r)

	movie, err := h.services.MovieService.Get(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.uploadPoster")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPosterSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, uploadError(err), "*Handler.uploadPoster")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, uploadError(err), "*Handler.uploadPoster")
		return
	}

	ext, ok := posterExtensions[http.DetectContentType(data)]
	if !ok {
		writeError(w, r, ErrUnsupportedImage, "*Handler.uploadPoster")
		return
	}

	name, err := h.storePoster(movie.ID, ext, data)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.uploadPoster").Str("movie_id", movie.ID).Msg("storing poster failed")
		writeError(w, r, err, "*Handler.uploadPoster")
		return
	}

	posterPath := posterURLPrefix + name
	patch := models.UpdateMovie{}
	patch.PosterPath = &posterPath
	if _, err = h.services.MovieService.Update(ctx, userID, movie.ID, patch); err != nil {
		writeError(w, r, err, "*Handler.uploadPoster")
		return
	}

	utils.WriteJSON(w, PosterResponse{PosterPath: posterPath}, http.StatusOK)
}

// storePoster writes {uploads}/{movieID}.{ext} and removes a previous poster
// of the same movie stored under another extension.
func (h *Handler) storePoster(movieID, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(h.app.UploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	name := movieID + "." + ext
	target := filepath.Join(h.app.UploadsDir, name)

	tmp, err := os.CreateTemp(h.app.UploadsDir, movieID+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create poster file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write poster file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close poster file: %w", err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("move poster file: %w", err)
	}

	for _, other := range posterExtensions {
		if other != ext {
			os.Remove(filepath.Join(h.app.UploadsDir, movieID+"."+other))
		}
	}

	return name, nil
}
