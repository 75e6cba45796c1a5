// Package gateway implements the public catflix API: it checks that the
// caller owns the resource it mutates and forwards the call to the owning
// service. Peer errors reach the caller unchanged, already classified by
// the proxy client.
package gateway

import (
	"context"
	"errors"
	"fmt"

	authmodel "github.com/abhishek622/catflix/authentication/pkg/model"
	"github.com/abhishek622/catflix/internal/apperr"
	reviewmodel "github.com/abhishek622/catflix/reviews/pkg/model"
	usermodel "github.com/abhishek622/catflix/users/pkg/model"
	videomodel "github.com/abhishek622/catflix/videos/pkg/model"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

type authenticationGateway interface {
	Connect(ctx context.Context, creds authmodel.Credentials) (string, error)
	Verify(ctx context.Context, token string) (string, error)
}

type usersGateway interface {
	Create(ctx context.Context, u usermodel.UserWithCredentials) error
	Get(ctx context.Context, pseudo string) (*usermodel.User, error)
	Update(ctx context.Context, u usermodel.UserWithCredentials) error
	Delete(ctx context.Context, pseudo string) error
}

type videosGateway interface {
	Create(ctx context.Context, v *videomodel.Video) error
	Get(ctx context.Context, hash string) (*videomodel.Video, error)
	List(ctx context.Context) ([]videomodel.Video, error)
	ListByAuthor(ctx context.Context, author string) ([]videomodel.Video, error)
	Update(ctx context.Context, v *videomodel.Video) error
	Delete(ctx context.Context, hash string) error
}

type reviewsGateway interface {
	Create(ctx context.Context, r *reviewmodel.Review) error
	Get(ctx context.Context, pseudo, hash string) (*reviewmodel.Review, error)
	ListByPseudo(ctx context.Context, pseudo string) ([]reviewmodel.Review, error)
	ListByHash(ctx context.Context, hash string) ([]reviewmodel.Review, error)
	Best(ctx context.Context, limit int) ([]videomodel.Video, error)
	Update(ctx context.Context, r *reviewmodel.Review) error
	Delete(ctx context.Context, pseudo, hash string) error
}

// Controller defines the gateway controller.
type Controller struct {
	auth    authenticationGateway
	users   usersGateway
	videos  videosGateway
	reviews reviewsGateway
	logger  *zap.Logger
	scope   tally.Scope
}

// New creates a gateway controller.
func New(auth authenticationGateway, users usersGateway, videos videosGateway, reviews reviewsGateway, logger *zap.Logger, scope tally.Scope) *Controller {
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Controller{
		auth:    auth,
		users:   users,
		videos:  videos,
		reviews: reviews,
		logger:  logger,
		scope:   scope.SubScope("gateway"),
	}
}

// Connect exchanges credentials for a token.
func (c *Controller) Connect(ctx context.Context, creds authmodel.Credentials) (string, error) {
	return c.auth.Connect(ctx, creds)
}

// Verify checks that token is valid and belongs to owner. A missing or
// rejected token is ErrUnauthorized; a valid token of another pseudo is
// ErrForbidden.
func (c *Controller) Verify(ctx context.Context, token, owner string) error {
	if token == "" {
		c.reject("missing")
		return fmt.Errorf("%w: missing token", apperr.ErrUnauthorized)
	}
	pseudo, err := c.auth.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			c.reject("invalid")
		}
		return err
	}
	if pseudo != owner {
		c.reject("owner")
		c.logger.Info("Rejected token outside of its owner scope",
			zap.String("pseudo", pseudo),
			zap.String("owner", owner),
		)
		return fmt.Errorf("%w: %s cannot act on behalf of %s", apperr.ErrForbidden, pseudo, owner)
	}
	return nil
}

func (c *Controller) reject(reason string) {
	c.scope.Tagged(map[string]string{"reason": reason}).Counter("auth_rejected").Inc(1)
}

// CreateUser registers a new user. Anyone may sign up.
func (c *Controller) CreateUser(ctx context.Context, u usermodel.UserWithCredentials) error {
	return c.users.Create(ctx, u)
}

// GetUser returns a user profile.
func (c *Controller) GetUser(ctx context.Context, pseudo string) (*usermodel.User, error) {
	return c.users.Get(ctx, pseudo)
}

// UpdateUser replaces the profile of the token owner.
func (c *Controller) UpdateUser(ctx context.Context, token string, u usermodel.UserWithCredentials) error {
	if err := c.Verify(ctx, token, u.Pseudo); err != nil {
		return err
	}
	return c.users.Update(ctx, u)
}

// DeleteUser removes the token owner and everything it owns.
func (c *Controller) DeleteUser(ctx context.Context, token, pseudo string) error {
	if err := c.Verify(ctx, token, pseudo); err != nil {
		return err
	}
	return c.users.Delete(ctx, pseudo)
}

// ListVideos returns every video.
func (c *Controller) ListVideos(ctx context.Context) ([]videomodel.Video, error) {
	return c.videos.List(ctx)
}

// ListVideosByAuthor returns the videos published by author.
func (c *Controller) ListVideosByAuthor(ctx context.Context, author string) ([]videomodel.Video, error) {
	return c.videos.ListByAuthor(ctx, author)
}

// BestVideos returns the best rated videos.
func (c *Controller) BestVideos(ctx context.Context, limit int) ([]videomodel.Video, error) {
	return c.reviews.Best(ctx, limit)
}

// GetVideo returns a video by hash.
func (c *Controller) GetVideo(ctx context.Context, hash string) (*videomodel.Video, error) {
	return c.videos.Get(ctx, hash)
}

// CreateVideo publishes a video authored by the token owner.
func (c *Controller) CreateVideo(ctx context.Context, token string, v *videomodel.Video) error {
	if err := c.Verify(ctx, token, v.Author); err != nil {
		return err
	}
	return c.videos.Create(ctx, v)
}

// UpdateVideo replaces a video of the token owner. The stored author is
// authoritative: a body naming another author is forbidden.
func (c *Controller) UpdateVideo(ctx context.Context, token string, v *videomodel.Video) error {
	if err := c.Verify(ctx, token, v.Author); err != nil {
		return err
	}
	current, err := c.videos.Get(ctx, v.Hash)
	if err != nil {
		return err
	}
	if current.Author != v.Author {
		c.reject("owner")
		return fmt.Errorf("%w: video %s belongs to %s", apperr.ErrForbidden, v.Hash, current.Author)
	}
	return c.videos.Update(ctx, v)
}

// DeleteVideo removes a video of the token owner. Ownership is read from
// the stored video, never from the request.
func (c *Controller) DeleteVideo(ctx context.Context, token, hash string) error {
	current, err := c.videos.Get(ctx, hash)
	if err != nil {
		return err
	}
	if err := c.Verify(ctx, token, current.Author); err != nil {
		return err
	}
	return c.videos.Delete(ctx, hash)
}

// GetReview returns the review of hash written by pseudo.
func (c *Controller) GetReview(ctx context.Context, pseudo, hash string) (*reviewmodel.Review, error) {
	return c.reviews.Get(ctx, pseudo, hash)
}

// ListReviewsByPseudo returns the reviews written by pseudo.
func (c *Controller) ListReviewsByPseudo(ctx context.Context, pseudo string) ([]reviewmodel.Review, error) {
	return c.reviews.ListByPseudo(ctx, pseudo)
}

// ListReviewsByHash returns the reviews of a video.
func (c *Controller) ListReviewsByHash(ctx context.Context, hash string) ([]reviewmodel.Review, error) {
	return c.reviews.ListByHash(ctx, hash)
}

// CreateReview stores a review written by the token owner.
func (c *Controller) CreateReview(ctx context.Context, token string, r *reviewmodel.Review) error {
	if err := c.Verify(ctx, token, r.Pseudo); err != nil {
		return err
	}
	return c.reviews.Create(ctx, r)
}

// UpdateReview replaces a review written by the token owner.
func (c *Controller) UpdateReview(ctx context.Context, token string, r *reviewmodel.Review) error {
	if err := c.Verify(ctx, token, r.Pseudo); err != nil {
		return err
	}
	return c.reviews.Update(ctx, r)
}

// DeleteReview removes a review written by the token owner.
func (c *Controller) DeleteReview(ctx context.Context, token, pseudo, hash string) error {
	if err := c.Verify(ctx, token, pseudo); err != nil {
		return err
	}
	return c.reviews.Delete(ctx, pseudo, hash)
}
