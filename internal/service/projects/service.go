package projects

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
	"github.com/alimkulovaskar/task-manager-backend/internal/repository"
	"github.com/alimkulovaskar/task-manager-backend/internal/validate"
)

type projectRepository interface {
	List(ctx context.Context, scope repository.Scope) ([]models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	GetByID(ctx context.Context, scope repository.Scope, id string) (*models.Project, error)
	Delete(ctx context.Context, scope repository.Scope, id string) error
}

type taskDetacher interface {
	ClearProject(ctx context.Context, scope repository.Scope, projectID primitive.ObjectID) error
}

type Service struct {
	repo  projectRepository
	tasks taskDetacher
}

func NewService(r projectRepository, tasks taskDetacher) *Service {
	return &Service{repo: r, tasks: tasks}
}

func (s *Service) List(ctx context.Context, scope repository.Scope) ([]models.Project, error) {
	return s.repo.List(ctx, scope)
}

func (s *Service) Create(ctx context.Context, ownerID string, input models.CreateProjectRequest) (*models.Project, error) {
	if err := validate.ProjectCreate(input); err != nil {
		return nil, err
	}

	owner, err := repository.ParseID(ownerID)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:    input.Name,
		OwnerID: owner,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project visible to the scope and detaches every task
// that referenced it. Reference existence is never enforced on write, so
// the detach runs unscoped to catch stale references from any owner.
func (s *Service) Delete(ctx context.Context, scope repository.Scope, id string) error {
	project, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, scope, id); err != nil {
		return err
	}
	return s.tasks.ClearProject(ctx, repository.Scope{Admin: true}, project.ID)
}
