package memory

import (
	"context"
	"sync"

	"github.com/abhishek622/catflix/users/internal/repository"
	"github.com/abhishek622/catflix/users/pkg/model"
	"go.opentelemetry.io/otel"
)

const tracerID = "users-repository-memory"

// Repository defines a memory user repository.
type Repository struct {
	sync.RWMutex
	data map[string]model.User
}

// New creates a new memory repository.
func New() *Repository {
	return &Repository{data: map[string]model.User{}}
}

// Get retrieves a user by pseudo.
func (r *Repository) Get(ctx context.Context, pseudo string) (*model.User, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	r.RLock()
	defer r.RUnlock()
	u, ok := r.data[pseudo]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

// Create adds a new user.
func (r *Repository) Create(ctx context.Context, u *model.User) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Create")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[u.Pseudo]; ok {
		return repository.ErrAlreadyExists
	}
	r.data[u.Pseudo] = *u
	return nil
}

// Update replaces an existing user.
func (r *Repository) Update(ctx context.Context, u *model.User) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Update")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[u.Pseudo]; !ok {
		return repository.ErrNotFound
	}
	r.data[u.Pseudo] = *u
	return nil
}

// Delete removes a user.
func (r *Repository) Delete(ctx context.Context, pseudo string) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Delete")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[pseudo]; !ok {
		return repository.ErrNotFound
	}
	delete(r.data, pseudo)
	return nil
}
