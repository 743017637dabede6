package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	if _, err := h.UserService.Register(r.Context(), input); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	user, err := h.UserService.Login(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if err := h.Sessions.Create(r.Context(), w, user); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.LoginResponse{
		Message: "Logged in successfully",
		User: models.SessionUser{
			ID:       user.ID.Hex(),
			Username: user.Username,
		},
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Destroy(w, r); err != nil {
		respondError(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// CheckAuth never fails: it reports whether the request carries a live
// session, for the client to decide which views to render.
func (h *Handler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	data, err := h.Sessions.Resolve(r)
	if err != nil {
		respondJSON(w, http.StatusOK, models.CheckAuthResponse{Authenticated: false})
		return
	}
	respondJSON(w, http.StatusOK, models.CheckAuthResponse{
		Authenticated: true,
		Username:      data.Username,
	})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	data, _ := SessionFromContext(r.Context())
	respondJSON(w, http.StatusOK, map[string]string{
		"message":  "Protected route",
		"userId":   data.UserID,
		"username": data.Username,
	})
}
