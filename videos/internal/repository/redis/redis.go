// Package redis caches single video lookups in Redis in front of another
// video repository. Writes invalidate the cached entry before they reach the
// underlying repository.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhishek622/catflix/videos/pkg/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "catflix:video:"

type videoRepository interface {
	Get(ctx context.Context, hash string) (*model.Video, error)
	List(ctx context.Context) ([]model.Video, error)
	ListByAuthor(ctx context.Context, author string) ([]model.Video, error)
	Create(ctx context.Context, v *model.Video) error
	Update(ctx context.Context, v *model.Video) error
	Delete(ctx context.Context, hash string) error
	DeleteMany(ctx context.Context, hashes []string) error
}

// Connect creates a Redis client from a redis:// URL or a host:port address.
func Connect(address string) (*redis.Client, error) {
	if strings.HasPrefix(address, "redis://") {
		opt, err := redis.ParseURL(address)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: address}), nil
}

// Repository is a read-through cache over another video repository.
//
// Before Update, Delete or DeleteMany touch the underlying store they
// replace the cached entries with a short-lived invalidation marker, and a
// read only fills the cache when the key is absent. A read racing a write
// can therefore never cache the pre-write video. Reads fall back to the
// underlying store when Redis fails; writes are refused instead, since a
// stale entry would outlive them.
type Repository struct {
	client *redis.Client
	next   videoRepository
	ttl    time.Duration
	logger *zap.Logger
}

// invalidationTTL is how long a written key stays uncacheable.
const invalidationTTL = 30 * time.Second

// invalidated marks a key whose video was just written. It is never valid JSON.
const invalidated = "!invalidated"

// New creates a caching repository in front of next.
func New(client *redis.Client, next videoRepository, ttl time.Duration, logger *zap.Logger) *Repository {
	return &Repository{client: client, next: next, ttl: ttl, logger: logger}
}

// Get returns the cached video or loads it from the underlying store.
func (r *Repository) Get(ctx context.Context, hash string) (*model.Video, error) {
	raw, err := r.client.Get(ctx, keyPrefix+hash).Bytes()
	switch {
	case err == nil && string(raw) == invalidated:
		return r.next.Get(ctx, hash)
	case err == nil:
		var v model.Video
		if err := json.Unmarshal(raw, &v); err == nil {
			return &v, nil
		}
		r.logger.Warn("Ignoring undecodable cache entry", zap.String("hash", hash))
		return r.next.Get(ctx, hash)
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("Video cache read failed", zap.String("hash", hash), zap.Error(err))
		return r.next.Get(ctx, hash)
	}

	v, err := r.next.Get(ctx, hash)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(v); err == nil {
		if err := r.client.SetNX(ctx, keyPrefix+hash, payload, r.ttl).Err(); err != nil {
			r.logger.Warn("Video cache write failed", zap.String("hash", hash), zap.Error(err))
		}
	}
	return v, nil
}

// List is not cached.
func (r *Repository) List(ctx context.Context) ([]model.Video, error) {
	return r.next.List(ctx)
}

// ListByAuthor is not cached.
func (r *Repository) ListByAuthor(ctx context.Context, author string) ([]model.Video, error) {
	return r.next.ListByAuthor(ctx, author)
}

// Create stores a new video. Missing videos are never cached, so there is
// nothing to invalidate.
func (r *Repository) Create(ctx context.Context, v *model.Video) error {
	return r.next.Create(ctx, v)
}

// Update replaces a video.
func (r *Repository) Update(ctx context.Context, v *model.Video) error {
	if err := r.invalidate(ctx, v.Hash); err != nil {
		return err
	}
	return r.next.Update(ctx, v)
}

// Delete removes a video.
func (r *Repository) Delete(ctx context.Context, hash string) error {
	if err := r.invalidate(ctx, hash); err != nil {
		return err
	}
	return r.next.Delete(ctx, hash)
}

// DeleteMany removes videos.
func (r *Repository) DeleteMany(ctx context.Context, hashes []string) error {
	if err := r.invalidate(ctx, hashes...); err != nil {
		return err
	}
	return r.next.DeleteMany(ctx, hashes)
}

func (r *Repository) invalidate(ctx context.Context, hashes ...string) error {
	if len(hashes) == 0 {
		return nil
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, h := range hashes {
			pipe.Set(ctx, keyPrefix+h, invalidated, invalidationTTL)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Video cache invalidation failed", zap.Strings("hashes", hashes), zap.Error(err))
		return fmt.Errorf("invalidate cached videos: %w", err)
	}
	return nil
}
