package memory

import (
	"context"
	"sync"

	"github.com/abhishek622/catflix/authentication/internal/repository"
	"go.opentelemetry.io/otel"
)

const tracerID = "authentication-repository-memory"

// Repository defines a memory credentials repository holding password hashes.
type Repository struct {
	sync.RWMutex
	data map[string][]byte
}

// New creates a new memory repository.
func New() *Repository {
	return &Repository{data: map[string][]byte{}}
}

// Get retrieves the password hash of pseudo.
func (r *Repository) Get(ctx context.Context, pseudo string) ([]byte, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	r.RLock()
	defer r.RUnlock()
	hash, ok := r.data[pseudo]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return hash, nil
}

// Create stores a new password hash for pseudo.
func (r *Repository) Create(ctx context.Context, pseudo string, hash []byte) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Create")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[pseudo]; ok {
		return repository.ErrAlreadyExists
	}
	r.data[pseudo] = hash
	return nil
}

// Update replaces the password hash of pseudo.
func (r *Repository) Update(ctx context.Context, pseudo string, hash []byte) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Update")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[pseudo]; !ok {
		return repository.ErrNotFound
	}
	r.data[pseudo] = hash
	return nil
}

// Delete removes the credentials of pseudo.
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
