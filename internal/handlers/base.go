package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
	"github.com/alimkulovaskar/task-manager-backend/internal/repository"
	"github.com/alimkulovaskar/task-manager-backend/internal/service/users"
	"github.com/alimkulovaskar/task-manager-backend/internal/session"
	"github.com/alimkulovaskar/task-manager-backend/internal/validate"
)

type userService interface {
	Register(ctx context.Context, input models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, input models.LoginRequest) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type taskService interface {
	Create(ctx context.Context, ownerID string, input models.CreateTaskRequest) (*models.Task, error)
	List(ctx context.Context, scope repository.Scope, opts repository.ListOptions) ([]models.Task, error)
	Get(ctx context.Context, scope repository.Scope, id string) (*models.Task, error)
	Update(ctx context.Context, scope repository.Scope, id string, input models.UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, scope repository.Scope, id string) error
}

type projectService interface {
	List(ctx context.Context, scope repository.Scope) ([]models.Project, error)
	Create(ctx context.Context, ownerID string, input models.CreateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, scope repository.Scope, id string) error
}

type Handler struct {
	UserService    userService
	TaskService    taskService
	ProjectService projectService
	Sessions       *session.Manager
}

func NewHandler(us userService, ts taskService, ps projectService, sessions *session.Manager) *Handler {
	return &Handler{
		UserService:    us,
		TaskService:    ts,
		ProjectService: ps,
		Sessions:       sessions,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps domain errors onto the HTTP error table.
// Anything unrecognized is a 500 with no internal detail leaked.
func respondServiceError(w http.ResponseWriter, err error) {
	var fieldErr *validate.FieldError
	switch {
	case errors.As(err, &fieldErr):
		respondError(w, http.StatusBadRequest, fieldErr.Message)
	case errors.Is(err, repository.ErrInvalidID):
		respondError(w, http.StatusBadRequest, "Invalid ID")
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, users.ErrUserExists):
		respondError(w, http.StatusConflict, "User already exists")
	case errors.Is(err, users.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "Database error")
	}
}
