package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
)

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	data, _ := SessionFromContext(r.Context())

	projects, err := h.ProjectService.List(r.Context(), scopeFrom(data))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	data, _ := SessionFromContext(r.Context())

	var input models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}

	project, err := h.ProjectService.Create(r.Context(), data.UserID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, project)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	data, _ := SessionFromContext(r.Context())

	if err := h.ProjectService.Delete(r.Context(), scopeFrom(data), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
