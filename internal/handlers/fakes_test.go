package handlers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alimkulovaskar/task-manager-backend/internal/models"
	"github.com/alimkulovaskar/task-manager-backend/internal/repository"
)

// In-memory repositories mirroring the mongo repositories' contracts,
// including ownership scoping and the project lookup on task listings.

type memUserRepo struct {
	mu    sync.Mutex
	users []models.User
}

func (f *memUserRepo) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return repository.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now()
	f.users = append(f.users, *u)
	return nil
}

func (f *memUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if _, err := repository.ParseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID.Hex() == id {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *memUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.User{}, f.users...), nil
}

type memProjectRepo struct {
	mu       sync.Mutex
	projects []models.Project
}

func scopeMatchesOwner(scope repository.Scope, owner primitive.ObjectID) bool {
	return scope.Admin || owner.Hex() == scope.UserID
}

func (f *memProjectRepo) List(_ context.Context, scope repository.Scope) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Project{}
	for _, p := range f.projects {
		if scopeMatchesOwner(scope, p.OwnerID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *memProjectRepo) Create(_ context.Context, p *models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	f.projects = append(f.projects, *p)
	return nil
}

func (f *memProjectRepo) GetByID(_ context.Context, scope repository.Scope, id string) (*models.Project, error) {
	if _, err := repository.ParseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p.ID.Hex() == id && scopeMatchesOwner(scope, p.OwnerID) {
			out := p
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *memProjectRepo) Delete(_ context.Context, scope repository.Scope, id string) error {
	if _, err := repository.ParseID(id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.projects {
		if p.ID.Hex() == id && scopeMatchesOwner(scope, p.OwnerID) {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *memProjectRepo) lookup(id primitive.ObjectID) *models.TaskProject {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p.ID == id {
			return &models.TaskProject{ID: p.ID, Name: p.Name}
		}
	}
	return nil
}

type memTaskRepo struct {
	mu       sync.Mutex
	tasks    []models.Task
	projects *memProjectRepo
}

func (f *memTaskRepo) List(_ context.Context, scope repository.Scope, opts repository.ListOptions) ([]models.Task, error) {
	f.mu.Lock()
	matched := []models.Task{}
	for _, t := range f.tasks {
		if !scopeMatchesOwner(scope, t.OwnerID) {
			continue
		}
		if opts.Title != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(opts.Title)) {
			continue
		}
		matched = append(matched, t)
	}
	f.mu.Unlock()

	switch opts.Sort {
	case "asc":
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Title < matched[j].Title })
	case "desc":
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Title > matched[j].Title })
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 5
	}
	skip := (page - 1) * limit
	if skip < 0 || skip >= int64(len(matched)) {
		return []models.Task{}, nil
	}
	end := skip + limit
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	pageItems := matched[skip:end]

	// emulate the $lookup enrichment
	out := []models.Task{}
	for _, t := range pageItems {
		if t.ProjectID != nil && f.projects != nil {
			t.Project = f.projects.lookup(*t.ProjectID)
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *memTaskRepo) GetByID(_ context.Context, scope repository.Scope, id string) (*models.Task, error) {
	if _, err := repository.ParseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ID.Hex() == id && scopeMatchesOwner(scope, t.OwnerID) {
			out := t
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *memTaskRepo) Create(_ context.Context, t *models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.ID = primitive.NewObjectID()
	t.CreatedAt = time.Now()
	f.tasks = append(f.tasks, *t)
	return nil
}

func (f *memTaskRepo) Update(_ context.Context, scope repository.Scope, id string, set, unset bson.M) (*models.Task, error) {
	if _, err := repository.ParseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID.Hex() != id || !scopeMatchesOwner(scope, t.OwnerID) {
			continue
		}
		applyTaskUpdate(&f.tasks[i], set, unset)
		out := f.tasks[i]
		return &out, nil
	}
	return nil, repository.ErrNotFound
}

func applyTaskUpdate(t *models.Task, set, unset bson.M) {
	if v, ok := set["title"]; ok {
		t.Title = v.(string)
	}
	if v, ok := set["description"]; ok {
		t.Description = v.(string)
	}
	if v, ok := set["status"]; ok {
		t.Status = v.(string)
	}
	if v, ok := set["dueDate"]; ok {
		if v == nil {
			t.DueDate = nil
		} else {
			due := v.(time.Time)
			t.DueDate = &due
		}
	}
	if v, ok := set["projectId"]; ok {
		pid := v.(primitive.ObjectID)
		t.ProjectID = &pid
	}
	if _, ok := unset["projectId"]; ok {
		t.ProjectID = nil
	}
}

func (f *memTaskRepo) Delete(_ context.Context, scope repository.Scope, id string) error {
	if _, err := repository.ParseID(id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID.Hex() == id && scopeMatchesOwner(scope, t.OwnerID) {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *memTaskRepo) ClearProject(_ context.Context, scope repository.Scope, projectID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		t := &f.tasks[i]
		if t.ProjectID != nil && *t.ProjectID == projectID && scopeMatchesOwner(scope, t.OwnerID) {
			t.ProjectID = nil
		}
	}
	return nil
}
