package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
	"github.com/alimkulovaskar/task-manager-backend/internal/repository"
)

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	data, _ := SessionFromContext(r.Context())

	q := r.URL.Query()
	opts := repository.ListOptions{
		Title: q.Get("title"),
		Sort:  q.Get("sort"),
		Page:  parseIntParam(q.Get("page"), 1),
		Limit: parseIntParam(q.Get("limit"), 5),
	}

	tasks, err := h.TaskService.List(r.Context(), scopeFrom(data), opts)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	data, _ := SessionFromContext(r.Context())

	task, err := h.TaskService.Get(r.Context(), scopeFrom(data), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	data, _ := SessionFromContext(r.Context())

	var input models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Title and description are required")
		return
	}

	task, err := h.TaskService.Create(r.Context(), data.UserID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, task)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	data, _ := SessionFromContext(r.Context())

	var input models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.TaskService.Update(r.Context(), scopeFrom(data), chi.URLParam(r, "id"), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	data, _ := SessionFromContext(r.Context())

	if err := h.TaskService.Delete(r.Context(), scopeFrom(data), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}

func parseIntParam(s string, fallback int64) int64 {
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
