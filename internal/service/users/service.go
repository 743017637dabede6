package users

import (
	"context"
	"errors"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
	"github.com/alimkulovaskar/task-manager-backend/internal/repository"
	"github.com/alimkulovaskar/task-manager-backend/internal/utils"
	"github.com/alimkulovaskar/task-manager-backend/internal/validate"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type userRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

type Service struct {
	repo userRepository
}

func NewService(r userRepository) *Service {
	return &Service{repo: r}
}

// Register creates a user with the default role. The username uniqueness
// check rides on the store's unique index, not a read-then-write race.
func (s *Service) Register(ctx context.Context, input models.RegisterRequest) (*models.User, error) {
	if err := validate.Credentials(input.Username, input.Password); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. Unknown username and wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input models.LoginRequest) (*models.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, &validate.FieldError{Field: "username", Message: "Username and password required"}
	}

	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GetAll(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}
