package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/reviews/internal/repository"
	"github.com/abhishek622/catflix/reviews/pkg/model"
	videomodel "github.com/abhishek622/catflix/videos/pkg/model"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

type reviewRepository interface {
	Get(ctx context.Context, pseudo, hash string) (*model.Review, error)
	List(ctx context.Context) ([]model.Review, error)
	ListByPseudo(ctx context.Context, pseudo string) ([]model.Review, error)
	ListByHash(ctx context.Context, hash string) ([]model.Review, error)
	Create(ctx context.Context, r *model.Review) error
	Update(ctx context.Context, r *model.Review) error
	Delete(ctx context.Context, pseudo, hash string) error
	DeleteByPseudo(ctx context.Context, pseudo string) error
	DeleteByHash(ctx context.Context, hash string) error
}

type usersGateway interface {
	Exists(ctx context.Context, pseudo string) error
}

type videosGateway interface {
	Get(ctx context.Context, hash string) (*videomodel.Video, error)
}

type reviewIngester interface {
	Ingest(ctx context.Context) (chan model.ReviewEvent, error)
}

// Controller defines the reviews service controller.
type Controller struct {
	repo      reviewRepository
	users     usersGateway
	videos    videosGateway
	ingester  reviewIngester
	bestLimit int
	logger    *zap.Logger
	scope     tally.Scope
}

// New creates a reviews service controller. bestLimit is the number of
// videos Best returns when no limit is requested. ingester may be nil.
func New(repo reviewRepository, users usersGateway, videos videosGateway, ingester reviewIngester, bestLimit int, logger *zap.Logger, scope tally.Scope) *Controller {
	if bestLimit <= 0 {
		bestLimit = DefaultBestLimit
	}
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Controller{
		repo:      repo,
		users:     users,
		videos:    videos,
		ingester:  ingester,
		bestLimit: bestLimit,
		logger:    logger,
		scope:     scope.SubScope("reviews"),
	}
}

// Get returns the review of hash written by pseudo.
func (c *Controller) Get(ctx context.Context, pseudo, hash string) (*model.Review, error) {
	r, err := c.repo.Get(ctx, pseudo, hash)
	if err != nil {
		return nil, translate(pseudo, hash, err)
	}
	return r, nil
}

// ListByPseudo returns the reviews written by pseudo.
func (c *Controller) ListByPseudo(ctx context.Context, pseudo string) ([]model.Review, error) {
	return c.repo.ListByPseudo(ctx, pseudo)
}

// ListByHash returns the reviews of the video identified by hash.
func (c *Controller) ListByHash(ctx context.Context, hash string) ([]model.Review, error) {
	return c.repo.ListByHash(ctx, hash)
}

// Create stores a new review. Its user and video must exist.
func (c *Controller) Create(ctx context.Context, r *model.Review) error {
	if err := c.check(ctx, r); err != nil {
		return err
	}
	if err := c.repo.Create(ctx, r); err != nil {
		return translate(r.Pseudo, r.Hash, err)
	}
	return nil
}

// Update replaces an existing review. Its user and video must exist.
func (c *Controller) Update(ctx context.Context, r *model.Review) error {
	if err := c.check(ctx, r); err != nil {
		return err
	}
	if err := c.repo.Update(ctx, r); err != nil {
		return translate(r.Pseudo, r.Hash, err)
	}
	return nil
}

// Put creates the review or replaces the existing one.
func (c *Controller) Put(ctx context.Context, r *model.Review) error {
	err := c.Create(ctx, r)
	if errors.Is(err, apperr.ErrAlreadyExists) {
		return c.Update(ctx, r)
	}
	return err
}

// Delete removes the review of hash written by pseudo.
func (c *Controller) Delete(ctx context.Context, pseudo, hash string) error {
	if err := c.repo.Delete(ctx, pseudo, hash); err != nil {
		return translate(pseudo, hash, err)
	}
	return nil
}

// DeleteByPseudo removes every review written by pseudo.
func (c *Controller) DeleteByPseudo(ctx context.Context, pseudo string) error {
	return c.repo.DeleteByPseudo(ctx, pseudo)
}

// DeleteByHash removes every review of the video identified by hash.
func (c *Controller) DeleteByHash(ctx context.Context, hash string) error {
	return c.repo.DeleteByHash(ctx, hash)
}

// check validates r and confirms that its user and video exist. The check is
// advisory: a concurrent cascade may still remove either afterwards.
func (c *Controller) check(ctx context.Context, r *model.Review) error {
	if !r.Valid() {
		return fmt.Errorf("%w: pseudo and hash are required and rating must be between %d and %d",
			apperr.ErrInvalidInput, model.MinRating, model.MaxRating)
	}
	if err := c.users.Exists(ctx, r.Pseudo); err != nil {
		return reference("user "+r.Pseudo, err)
	}
	if _, err := c.videos.Get(ctx, r.Hash); err != nil {
		return reference("video "+r.Hash, err)
	}
	return nil
}

func reference(what string, err error) error {
	if errors.Is(err, apperr.ErrNotFound) && !errors.Is(err, apperr.ErrUpstreamUnavailable) {
		return fmt.Errorf("%w: %s does not exist", apperr.ErrInvalidInput, what)
	}
	return err
}

func translate(pseudo, hash string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("review of %s by %s: %w", hash, pseudo, apperr.ErrNotFound)
	case errors.Is(err, repository.ErrAlreadyExists):
		return fmt.Errorf("review of %s by %s: %w", hash, pseudo, apperr.ErrAlreadyExists)
	default:
		return err
	}
}

// StartIngestion applies review events from the ingester until ctx is
// cancelled. Events that fail are logged and skipped.
func (c *Controller) StartIngestion(ctx context.Context) error {
	if c.ingester == nil {
		return errors.New("no review ingester configured")
	}
	ch, err := c.ingester.Ingest(ctx)
	if err != nil {
		return err
	}
	for e := range ch {
		c.apply(ctx, e)
	}
	return ctx.Err()
}

func (c *Controller) apply(ctx context.Context, e model.ReviewEvent) {
	var err error
	switch e.EventType {
	case model.ReviewEventTypePut:
		r := e.Review
		err = c.Put(ctx, &r)
	case model.ReviewEventTypeDelete:
		err = c.Delete(ctx, e.Pseudo, e.Hash)
	default:
		err = fmt.Errorf("%w: unknown event type %q", apperr.ErrInvalidInput, e.EventType)
	}
	outcome := "applied"
	if err != nil {
		outcome = "skipped"
		c.logger.Warn("Skipping review event",
			zap.String("providerId", e.ProviderID),
			zap.String("eventType", string(e.EventType)),
			zap.String("pseudo", e.Pseudo),
			zap.String("hash", e.Hash),
			zap.Error(err),
		)
	}
	c.scope.Tagged(map[string]string{"outcome": outcome}).Counter("events").Inc(1)
}
