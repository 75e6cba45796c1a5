package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/abhishek622/catflix/reviews/internal/repository"
	"github.com/abhishek622/catflix/reviews/pkg/model"
	"go.opentelemetry.io/otel"
)

const tracerID = "reviews-repository-memory"

type key struct {
	pseudo string
	hash   string
}

// Repository defines a memory review repository.
type Repository struct {
	sync.RWMutex
	data   map[key]model.Review
	nextID int64
}

// New creates a new memory repository.
func New() *Repository {
	return &Repository{data: map[key]model.Review{}}
}

// Get retrieves the review of hash written by pseudo.
func (r *Repository) Get(ctx context.Context, pseudo, hash string) (*model.Review, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	r.RLock()
	defer r.RUnlock()
	rev, ok := r.data[key{pseudo, hash}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rev, nil
}

// List returns every review.
func (r *Repository) List(ctx context.Context) ([]model.Review, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/List")
	defer span.End()

	return r.filter(func(model.Review) bool { return true }), nil
}

// ListByPseudo returns the reviews written by pseudo.
func (r *Repository) ListByPseudo(ctx context.Context, pseudo string) ([]model.Review, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/ListByPseudo")
	defer span.End()

	return r.filter(func(rev model.Review) bool { return rev.Pseudo == pseudo }), nil
}

// ListByHash returns the reviews of hash.
func (r *Repository) ListByHash(ctx context.Context, hash string) ([]model.Review, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/ListByHash")
	defer span.End()

	return r.filter(func(rev model.Review) bool { return rev.Hash == hash }), nil
}

// filter returns matching reviews in insertion order.
func (r *Repository) filter(keep func(model.Review) bool) []model.Review {
	r.RLock()
	defer r.RUnlock()
	res := []model.Review{}
	for _, rev := range r.data {
		if keep(rev) {
			res = append(res, rev)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// Create stores a new review and assigns its ID.
func (r *Repository) Create(ctx context.Context, rev *model.Review) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Create")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	k := key{rev.Pseudo, rev.Hash}
	if _, ok := r.data[k]; ok {
		return repository.ErrAlreadyExists
	}
	r.nextID++
	rev.ID = r.nextID
	r.data[k] = *rev
	return nil
}

// Update replaces an existing review, keeping its ID.
func (r *Repository) Update(ctx context.Context, rev *model.Review) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Update")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	k := key{rev.Pseudo, rev.Hash}
	old, ok := r.data[k]
	if !ok {
		return repository.ErrNotFound
	}
	rev.ID = old.ID
	r.data[k] = *rev
	return nil
}

// Delete removes the review of hash written by pseudo.
func (r *Repository) Delete(ctx context.Context, pseudo, hash string) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Delete")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	k := key{pseudo, hash}
	if _, ok := r.data[k]; !ok {
		return repository.ErrNotFound
	}
	delete(r.data, k)
	return nil
}

// DeleteByPseudo removes every review written by pseudo.
func (r *Repository) DeleteByPseudo(ctx context.Context, pseudo string) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/DeleteByPseudo")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	for k := range r.data {
		if k.pseudo == pseudo {
			delete(r.data, k)
		}
	}
	return nil
}

// DeleteByHash removes every review of hash.
func (r *Repository) DeleteByHash(ctx context.Context, hash string) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/DeleteByHash")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	for k := range r.data {
		if k.hash == hash {
			delete(r.data, k)
		}
	}
	return nil
}
