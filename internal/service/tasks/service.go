package tasks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
	"github.com/alimkulovaskar/task-manager-backend/internal/repository"
	"github.com/alimkulovaskar/task-manager-backend/internal/validate"
)

type taskRepository interface {
	List(ctx context.Context, scope repository.Scope, opts repository.ListOptions) ([]models.Task, error)
	GetByID(ctx context.Context, scope repository.Scope, id string) (*models.Task, error)
	Create(ctx context.Context, t *models.Task) error
	Update(ctx context.Context, scope repository.Scope, id string, set, unset bson.M) (*models.Task, error)
	Delete(ctx context.Context, scope repository.Scope, id string) error
}

type Service struct {
	repo taskRepository
}

func NewService(r taskRepository) *Service {
	return &Service{repo: r}
}

// Create stores a new task for ownerID. Status always starts at "To Do"
// no matter what the client sent.
func (s *Service) Create(ctx context.Context, ownerID string, input models.CreateTaskRequest) (*models.Task, error) {
	if err := validate.TaskCreate(input); err != nil {
		return nil, err
	}

	owner, err := repository.ParseID(ownerID)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      models.StatusToDo,
		OwnerID:     owner,
		DueDate:     nil,
	}
	if input.DueDate != "" {
		due, err := validate.ParseDate(input.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = &due
	}
	if input.ProjectID != "" {
		pid, err := repository.ParseID(input.ProjectID)
		if err != nil {
			return nil, err
		}
		task.ProjectID = &pid
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Service) List(ctx context.Context, scope repository.Scope, opts repository.ListOptions) ([]models.Task, error) {
	return s.repo.List(ctx, scope, opts)
}

func (s *Service) Get(ctx context.Context, scope repository.Scope, id string) (*models.Task, error) {
	return s.repo.GetByID(ctx, scope, id)
}

// Update mutates only the supplied fields. An empty dueDate or projectId
// string clears the stored value.
func (s *Service) Update(ctx context.Context, scope repository.Scope, id string, input models.UpdateTaskRequest) (*models.Task, error) {
	if err := validate.TaskUpdate(input); err != nil {
		return nil, err
	}

	set, unset := buildUpdate(input)
	if len(set) == 0 && len(unset) == 0 {
		return nil, &validate.FieldError{Field: "", Message: "No update fields provided"}
	}

	return s.repo.Update(ctx, scope, id, set, unset)
}

func (s *Service) Delete(ctx context.Context, scope repository.Scope, id string) error {
	return s.repo.Delete(ctx, scope, id)
}

func buildUpdate(input models.UpdateTaskRequest) (set, unset bson.M) {
	set = bson.M{}
	unset = bson.M{}

	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.DueDate != nil {
		if *input.DueDate == "" {
			set["dueDate"] = nil
		} else {
			// already validated, parse cannot fail here
			due, _ := validate.ParseDate(*input.DueDate)
			set["dueDate"] = due.UTC()
		}
	}
	if input.ProjectID != nil {
		if *input.ProjectID == "" {
			unset["projectId"] = ""
		} else {
			pid, _ := repository.ParseID(*input.ProjectID)
			set["projectId"] = pid
		}
	}
	return set, unset
}
