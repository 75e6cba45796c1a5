package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/abhishek622/catflix/internal/proxy"
	"github.com/abhishek622/catflix/pkg/discovery"
	"github.com/abhishek622/catflix/videos/pkg/model"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Gateway defines an HTTP gateway for the videos service.
type Gateway struct {
	client *proxy.Client
}

// New creates a new HTTP gateway for the videos service.
func New(registry discovery.Registry, httpClient *http.Client, logger *zap.Logger, scope tally.Scope) *Gateway {
	return &Gateway{proxy.New("videos", registry, httpClient, logger, scope)}
}

// Create stores a new video.
func (g *Gateway) Create(ctx context.Context, v *model.Video) error {
	return g.client.Call(ctx, http.MethodPost, path(v.Hash), v).Err()
}

// Get returns a video by hash.
func (g *Gateway) Get(ctx context.Context, hash string) (*model.Video, error) {
	var v model.Video
	if err := g.client.Call(ctx, http.MethodGet, path(hash), nil).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns every video.
func (g *Gateway) List(ctx context.Context) ([]model.Video, error) {
	return g.list(ctx, "/videos")
}

// ListByAuthor returns the videos published by author.
func (g *Gateway) ListByAuthor(ctx context.Context, author string) ([]model.Video, error) {
	return g.list(ctx, "/videos/user/"+url.PathEscape(author))
}

// Update replaces a video.
func (g *Gateway) Update(ctx context.Context, v *model.Video) error {
	return g.client.Call(ctx, http.MethodPut, path(v.Hash), v).Err()
}

// Delete removes a video and its reviews.
func (g *Gateway) Delete(ctx context.Context, hash string) error {
	return g.client.Call(ctx, http.MethodDelete, path(hash), nil).Err()
}

func (g *Gateway) list(ctx context.Context, p string) ([]model.Video, error) {
	var videos []model.Video
	if err := g.client.Call(ctx, http.MethodGet, p, nil).Decode(&videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func path(hash string) string {
	return "/videos/" + url.PathEscape(hash)
}
