package users

import (
	"context"
	"errors"
	"fmt"

	authmodel "github.com/abhishek622/catflix/authentication/pkg/model"
	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/internal/cascade"
	"github.com/abhishek622/catflix/users/internal/repository"
	"github.com/abhishek622/catflix/users/pkg/model"
	"go.uber.org/zap"
)

type usersRepository interface {
	Get(ctx context.Context, pseudo string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, pseudo string) error
}

type reviewsGateway interface {
	DeleteByPseudo(ctx context.Context, pseudo string) error
}

type videosGateway interface {
	DeleteByAuthor(ctx context.Context, author string) error
}

type credentialsGateway interface {
	Create(ctx context.Context, creds authmodel.Credentials) error
	Update(ctx context.Context, creds authmodel.Credentials) error
	Delete(ctx context.Context, pseudo string) error
}

// Controller defines the users service controller.
type Controller struct {
	repo        usersRepository
	reviews     reviewsGateway
	videos      videosGateway
	credentials credentialsGateway
	cascade     *cascade.Propagator
	logger      *zap.Logger
}

// New creates a users service controller.
func New(repo usersRepository, reviews reviewsGateway, videos videosGateway, credentials credentialsGateway, propagator *cascade.Propagator, logger *zap.Logger) *Controller {
	return &Controller{
		repo:        repo,
		reviews:     reviews,
		videos:      videos,
		credentials: credentials,
		cascade:     propagator,
		logger:      logger,
	}
}

// Get returns the user identified by pseudo.
func (c *Controller) Get(ctx context.Context, pseudo string) (*model.User, error) {
	u, err := c.repo.Get(ctx, pseudo)
	if err != nil {
		return nil, translate(pseudo, err)
	}
	return u, nil
}

// Create registers a new user and its credentials. The user record is only
// written once the authentication service accepted the credentials.
func (c *Controller) Create(ctx context.Context, u model.UserWithCredentials) error {
	if !u.Valid() {
		return fmt.Errorf("%w: pseudo, firstname, lastname and a password of at most %d bytes are required", apperr.ErrInvalidInput, authmodel.MaxPasswordLength)
	}
	if _, err := c.repo.Get(ctx, u.Pseudo); err == nil {
		return fmt.Errorf("user %s: %w", u.Pseudo, apperr.ErrAlreadyExists)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err := c.credentials.Create(ctx, u.Credentials()); err != nil {
		return upstream("create credentials", u.Pseudo, err)
	}
	user := u.User()
	if err := c.repo.Create(ctx, &user); err != nil {
		c.releaseCredentials(ctx, u.Pseudo, err)
		return translate(u.Pseudo, err)
	}
	return nil
}

// releaseCredentials removes credentials created for a user that could not
// be stored. A failed removal leaves orphaned credentials and is logged.
func (c *Controller) releaseCredentials(ctx context.Context, pseudo string, cause error) {
	err := c.credentials.Delete(ctx, pseudo)
	if err == nil {
		c.logger.Warn("Released credentials of a user that could not be stored",
			zap.String("pseudo", pseudo), zap.NamedError("cause", cause))
		return
	}
	c.logger.Error("Orphaned credentials: user not stored and credentials not released",
		zap.String("pseudo", pseudo), zap.NamedError("cause", cause), zap.Error(err))
}

// Update replaces the profile and credentials of an existing user.
func (c *Controller) Update(ctx context.Context, u model.UserWithCredentials) error {
	if !u.Valid() {
		return fmt.Errorf("%w: pseudo, firstname, lastname and a password of at most %d bytes are required", apperr.ErrInvalidInput, authmodel.MaxPasswordLength)
	}
	if _, err := c.repo.Get(ctx, u.Pseudo); err != nil {
		return translate(u.Pseudo, err)
	}
	if err := c.credentials.Update(ctx, u.Credentials()); err != nil {
		return upstream("update credentials", u.Pseudo, err)
	}
	user := u.User()
	if err := c.repo.Update(ctx, &user); err != nil {
		return translate(u.Pseudo, err)
	}
	return nil
}

// Delete removes a user after its reviews, videos and credentials. If any
// dependent service fails the user is kept.
func (c *Controller) Delete(ctx context.Context, pseudo string) error {
	if _, err := c.repo.Get(ctx, pseudo); err != nil {
		return translate(pseudo, err)
	}
	err := c.cascade.Run(ctx, "user "+pseudo,
		cascade.Step{Target: "reviews", Run: func(ctx context.Context) error { return c.reviews.DeleteByPseudo(ctx, pseudo) }},
		cascade.Step{Target: "videos", Run: func(ctx context.Context) error { return c.videos.DeleteByAuthor(ctx, pseudo) }},
		cascade.Step{Target: "authentication", Run: func(ctx context.Context) error { return c.credentials.Delete(ctx, pseudo) }},
	)
	if err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, pseudo); err != nil {
		return translate(pseudo, err)
	}
	c.logger.Info("Deleted user", zap.String("pseudo", pseudo))
	return nil
}

func translate(pseudo string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("user %s: %w", pseudo, apperr.ErrNotFound)
	case errors.Is(err, repository.ErrAlreadyExists):
		return fmt.Errorf("user %s: %w", pseudo, apperr.ErrAlreadyExists)
	default:
		return err
	}
}

// upstream reports a failed credentials call. The users service owns the
// lockstep between both records, so any classified refusal is a failure of
// the dependency rather than of the caller's input.
func upstream(op, pseudo string, err error) error {
	if errors.Is(err, apperr.ErrUpstreamUnavailable) {
		return fmt.Errorf("%s for %s: %w", op, pseudo, err)
	}
	return fmt.Errorf("%w: %s for %s: %v", apperr.ErrUpstreamUnavailable, op, pseudo, err)
}
