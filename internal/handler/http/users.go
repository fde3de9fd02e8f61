package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/my-movies/internal/app"
	"github.com/MKhiriev/my-movies/internal/utils"
	"github.com/MKhiriev/my-movies/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listUsers")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.AdminCreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.createUser")
		return
	}

	resp, err := h.services.AuthService.AdminCreateUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.createUser")
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) updateUserRole(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.updateUserRole")
		return
	}

	user, err := h.services.AuthService.UpdateUserRole(r.Context(), userIDOf(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, "*Handler.updateUserRole")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) setUserPassword(w http.ResponseWriter, r *http.Request) {
	var req models.SetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "*Handler.setUserPassword")
		return
	}

	if err := h.services.AuthService.AdminSetPassword(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, r, err, "*Handler.setUserPassword")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPasswordUpdated}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.DeleteUser(r.Context(), userIDOf(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "*Handler.deleteUser")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserDeleted}, http.StatusOK)
}
