package authentication

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/catflix/authentication/internal/repository"
	"github.com/abhishek622/catflix/authentication/pkg/model"
	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type credentialsRepository interface {
	Get(ctx context.Context, pseudo string) ([]byte, error)
	Create(ctx context.Context, pseudo string, hash []byte) error
	Update(ctx context.Context, pseudo string, hash []byte) error
	Delete(ctx context.Context, pseudo string) error
}

type tokenManager interface {
	Issue(pseudo string) (string, error)
	Verify(token string) (string, error)
}

// Controller defines the authentication service controller.
type Controller struct {
	repo       credentialsRepository
	tokens     tokenManager
	bcryptCost int
	logger     *zap.Logger
	scope      tally.Scope
}

// New creates an authentication service controller. A zero bcryptCost uses
// bcrypt.DefaultCost and a nil scope disables metrics.
func New(repo credentialsRepository, tokens tokenManager, bcryptCost int, logger *zap.Logger, scope tally.Scope) *Controller {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Controller{repo: repo, tokens: tokens, bcryptCost: bcryptCost, logger: logger, scope: scope}
}

// Connect checks credentials and returns a token for their pseudo.
func (c *Controller) Connect(ctx context.Context, creds model.Credentials) (string, error) {
	if !creds.Valid() {
		return "", fmt.Errorf("%w: pseudo and a password of at most %d bytes are required", apperr.ErrInvalidInput, model.MaxPasswordLength)
	}
	hash, err := c.repo.Get(ctx, creds.Pseudo)
	if errors.Is(err, repository.ErrNotFound) {
		c.scope.Counter("connect_rejected").Inc(1)
		return "", apperr.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)); err != nil {
		c.logger.Debug("Rejected credentials", zap.String("pseudo", creds.Pseudo))
		c.scope.Counter("connect_rejected").Inc(1)
		return "", apperr.ErrUnauthorized
	}
	c.scope.Counter("tokens_issued").Inc(1)
	return c.tokens.Issue(creds.Pseudo)
}

// Verify returns the pseudo identified by token. A token whose credentials
// were deleted since issuance is rejected.
func (c *Controller) Verify(ctx context.Context, token string) (string, error) {
	pseudo, err := c.tokens.Verify(token)
	if err != nil {
		return "", apperr.ErrUnauthorized
	}
	if _, err := c.repo.Get(ctx, pseudo); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperr.ErrUnauthorized
		}
		return "", err
	}
	return pseudo, nil
}

// Create stores credentials for a new pseudo.
func (c *Controller) Create(ctx context.Context, creds model.Credentials) error {
	hash, err := c.hash(creds)
	if err != nil {
		return err
	}
	if err := c.repo.Create(ctx, creds.Pseudo, hash); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return fmt.Errorf("credentials %s: %w", creds.Pseudo, apperr.ErrAlreadyExists)
		}
		return err
	}
	return nil
}

// Update replaces the password of an existing pseudo.
func (c *Controller) Update(ctx context.Context, creds model.Credentials) error {
	hash, err := c.hash(creds)
	if err != nil {
		return err
	}
	if err := c.repo.Update(ctx, creds.Pseudo, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("credentials %s: %w", creds.Pseudo, apperr.ErrNotFound)
		}
		return err
	}
	return nil
}

// Delete removes the credentials of pseudo.
func (c *Controller) Delete(ctx context.Context, pseudo string) error {
	if err := c.repo.Delete(ctx, pseudo); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("credentials %s: %w", pseudo, apperr.ErrNotFound)
		}
		return err
	}
	return nil
}

func (c *Controller) hash(creds model.Credentials) ([]byte, error) {
	if !creds.Valid() {
		return nil, fmt.Errorf("%w: pseudo and a password of at most %d bytes are required", apperr.ErrInvalidInput, model.MaxPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), c.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	return hash, nil
}
