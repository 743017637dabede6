package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListUsers exposes every registered user to admins. Password hashes are
// excluded by the model's json tags.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.GetAll(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetByID(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}
