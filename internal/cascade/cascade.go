// Package cascade removes the records other services hold for an owner
// before the owner itself is deleted.
//
// Steps run in order, synchronously, on the caller's context. A step whose
// target reports not found is already consistent. Any other failure stops
// the chain and is returned as apperr.ErrUpstreamUnavailable so that the
// caller keeps the owning record.
package cascade

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Step deletes the dependents of one owner held by Target.
type Step struct {
	Target string
	Run    func(ctx context.Context) error
}

// Propagator runs cascade steps.
type Propagator struct {
	logger *zap.Logger
	scope  tally.Scope
}

// New creates a propagator. A nil scope disables metrics.
func New(logger *zap.Logger, scope tally.Scope) *Propagator {
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Propagator{logger: logger, scope: scope.SubScope("cascade")}
}

// Run executes steps for owner in order and stops at the first failure.
func (p *Propagator) Run(ctx context.Context, owner string, steps ...Step) error {
	for _, s := range steps {
		err := s.Run(ctx)
		switch {
		case err == nil:
			p.scope.Tagged(map[string]string{"target": s.Target}).Counter("steps").Inc(1)
		case errors.Is(err, apperr.ErrNotFound) && !errors.Is(err, apperr.ErrUpstreamUnavailable):
			p.logger.Warn("Cascade target reported not found, treating as consistent",
				zap.String("owner", owner), zap.String("target", s.Target), zap.Error(err))
			p.scope.Tagged(map[string]string{"target": s.Target}).Counter("steps").Inc(1)
		default:
			p.logger.Error("Cascade aborted, owner kept",
				zap.String("owner", owner), zap.String("target", s.Target), zap.Error(err))
			p.scope.Tagged(map[string]string{"target": s.Target}).Counter("aborts").Inc(1)
			if errors.Is(err, apperr.ErrUpstreamUnavailable) {
				return fmt.Errorf("cascade to %s for %s: %w", s.Target, owner, err)
			}
			return fmt.Errorf("%w: cascade to %s for %s: %v", apperr.ErrUpstreamUnavailable, s.Target, owner, err)
		}
	}
	return nil
}
