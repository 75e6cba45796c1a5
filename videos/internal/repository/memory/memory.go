package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/abhishek622/catflix/videos/internal/repository"
	"github.com/abhishek622/catflix/videos/pkg/model"
	"go.opentelemetry.io/otel"
)

const tracerID = "videos-repository-memory"

// Repository defines a memory video repository.
type Repository struct {
	sync.RWMutex
	data map[string]model.Video
}

// New creates a new memory repository.
func New() *Repository {
	return &Repository{data: map[string]model.Video{}}
}

// Get retrieves a video by hash.
func (r *Repository) Get(ctx context.Context, hash string) (*model.Video, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	r.RLock()
	defer r.RUnlock()
	v, ok := r.data[hash]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

// List returns every video ordered by hash.
func (r *Repository) List(ctx context.Context) ([]model.Video, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/List")
	defer span.End()

	return r.filter(func(model.Video) bool { return true }), nil
}

// ListByAuthor returns the videos of author ordered by hash.
func (r *Repository) ListByAuthor(ctx context.Context, author string) ([]model.Video, error) {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/ListByAuthor")
	defer span.End()

	return r.filter(func(v model.Video) bool { return v.Author == author }), nil
}

func (r *Repository) filter(keep func(model.Video) bool) []model.Video {
	r.RLock()
	defer r.RUnlock()
	res := []model.Video{}
	for _, v := range r.data {
		if keep(v) {
			res = append(res, v)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Hash < res[j].Hash })
	return res
}

// Create adds a new video.
func (r *Repository) Create(ctx context.Context, v *model.Video) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Create")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[v.Hash]; ok {
		return repository.ErrAlreadyExists
	}
	r.data[v.Hash] = *v
	return nil
}

// Update replaces an existing video.
func (r *Repository) Update(ctx context.Context, v *model.Video) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Update")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[v.Hash]; !ok {
		return repository.ErrNotFound
	}
	r.data[v.Hash] = *v
	return nil
}

// Delete removes a video.
func (r *Repository) Delete(ctx context.Context, hash string) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Delete")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[hash]; !ok {
		return repository.ErrNotFound
	}
	delete(r.data, hash)
	return nil
}

// DeleteMany removes the given videos, ignoring hashes that are absent.
func (r *Repository) DeleteMany(ctx context.Context, hashes []string) error {
	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/DeleteMany")
	defer span.End()

	r.Lock()
	defer r.Unlock()
	for _, h := range hashes {
		delete(r.data, h)
	}
	return nil
}
