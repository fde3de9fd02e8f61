package http

import (
	"net/http"

	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	resp, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.forgotPassword")
		return
	}

	resp, err := h.services.AuthService.RequestPasswordReset(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.forgotPassword")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.resetPassword")
		return
	}

	resp, err := h.services.AuthService.ResetPassword(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.resetPassword")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.Me(r.Context(), userIDOf(r))
	if err != nil {
		writeError(w, r, err, "*Handler.me")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePreferencesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.updatePreferences")
		return
	}

	user, err := h.services.AuthService.UpdatePreferences(r.Context(), userIDOf(r), req)
	if err != nil {
		writeError(w, r, err, "*Handler.updatePreferences")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
