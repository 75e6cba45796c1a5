package videos

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/internal/cascade"
	"github.com/abhishek622/catflix/videos/internal/repository"
	"github.com/abhishek622/catflix/videos/pkg/model"
	"go.uber.org/zap"
)

type videoRepository interface {
	Get(ctx context.Context, hash string) (*model.Video, error)
	List(ctx context.Context) ([]model.Video, error)
	ListByAuthor(ctx context.Context, author string) ([]model.Video, error)
	Create(ctx context.Context, v *model.Video) error
	Update(ctx context.Context, v *model.Video) error
	Delete(ctx context.Context, hash string) error
	DeleteMany(ctx context.Context, hashes []string) error
}

type usersGateway interface {
	Exists(ctx context.Context, pseudo string) error
}

type reviewsGateway interface {
	DeleteByHash(ctx context.Context, hash string) error
}

// Controller defines the videos service controller.
type Controller struct {
	repo    videoRepository
	users   usersGateway
	reviews reviewsGateway
	cascade *cascade.Propagator
	logger  *zap.Logger
}

// New creates a videos service controller.
func New(repo videoRepository, users usersGateway, reviews reviewsGateway, propagator *cascade.Propagator, logger *zap.Logger) *Controller {
	return &Controller{repo: repo, users: users, reviews: reviews, cascade: propagator, logger: logger}
}

// Get returns the video identified by hash.
func (c *Controller) Get(ctx context.Context, hash string) (*model.Video, error) {
	v, err := c.repo.Get(ctx, hash)
	if err != nil {
		return nil, translate(hash, err)
	}
	return v, nil
}

// List returns every video.
func (c *Controller) List(ctx context.Context) ([]model.Video, error) {
	return c.repo.List(ctx)
}

// ListByAuthor returns the videos published by author.
func (c *Controller) ListByAuthor(ctx context.Context, author string) ([]model.Video, error) {
	return c.repo.ListByAuthor(ctx, author)
}

// Create stores a new video whose author must be a known user.
func (c *Controller) Create(ctx context.Context, v *model.Video) error {
	if err := c.check(ctx, v); err != nil {
		return err
	}
	if err := c.repo.Create(ctx, v); err != nil {
		return translate(v.Hash, err)
	}
	return nil
}

// Update replaces an existing video. The author must be a known user.
func (c *Controller) Update(ctx context.Context, v *model.Video) error {
	if err := c.check(ctx, v); err != nil {
		return err
	}
	if err := c.repo.Update(ctx, v); err != nil {
		return translate(v.Hash, err)
	}
	return nil
}

func (c *Controller) check(ctx context.Context, v *model.Video) error {
	if !v.Valid() {
		return fmt.Errorf("%w: hash, name and author are required, creationYear must be at least 1970 and duration positive", apperr.ErrInvalidInput)
	}
	if err := c.users.Exists(ctx, v.Author); err != nil {
		if errors.Is(err, apperr.ErrNotFound) && !errors.Is(err, apperr.ErrUpstreamUnavailable) {
			return fmt.Errorf("%w: author %s does not exist", apperr.ErrInvalidInput, v.Author)
		}
		return err
	}
	return nil
}

// Delete removes a video after its reviews. If the reviews service fails
// the video is kept.
func (c *Controller) Delete(ctx context.Context, hash string) error {
	if _, err := c.repo.Get(ctx, hash); err != nil {
		return translate(hash, err)
	}
	if err := c.cascade.Run(ctx, "video "+hash, c.reviewsStep(hash)); err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, hash); err != nil {
		return translate(hash, err)
	}
	return nil
}

// DeleteByAuthor removes every video of author with its reviews.
func (c *Controller) DeleteByAuthor(ctx context.Context, author string) error {
	videos, err := c.repo.ListByAuthor(ctx, author)
	if err != nil {
		return err
	}
	return c.deleteAll(ctx, "author "+author, videos)
}

// DeleteAll removes every video with its reviews.
func (c *Controller) DeleteAll(ctx context.Context) error {
	videos, err := c.repo.List(ctx)
	if err != nil {
		return err
	}
	return c.deleteAll(ctx, "all videos", videos)
}

// deleteAll cascades to the reviews of each enumerated video, then removes
// exactly those videos. No video is removed if a cascade call fails.
func (c *Controller) deleteAll(ctx context.Context, owner string, videos []model.Video) error {
	hashes := make([]string, len(videos))
	steps := make([]cascade.Step, len(videos))
	for i, v := range videos {
		hashes[i] = v.Hash
		steps[i] = c.reviewsStep(v.Hash)
	}
	if err := c.cascade.Run(ctx, owner, steps...); err != nil {
		return err
	}
	if err := c.repo.DeleteMany(ctx, hashes); err != nil {
		return err
	}
	c.logger.Info("Deleted videos", zap.String("owner", owner), zap.Int("count", len(hashes)))
	return nil
}

func (c *Controller) reviewsStep(hash string) cascade.Step {
	return cascade.Step{
		Target: "reviews",
		Run:    func(ctx context.Context) error { return c.reviews.DeleteByHash(ctx, hash) },
	}
}

func translate(hash string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("video %s: %w", hash, apperr.ErrNotFound)
	case errors.Is(err, repository.ErrAlreadyExists):
		return fmt.Errorf("video %s: %w", hash, apperr.ErrAlreadyExists)
	default:
		return err
	}
}
