package http

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/abhishek622/catflix/internal/proxy"
	"github.com/abhishek622/catflix/pkg/discovery"
	"github.com/abhishek622/catflix/reviews/pkg/model"
	videomodel "github.com/abhishek622/catflix/videos/pkg/model"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Gateway defines an HTTP gateway for the reviews service.
type Gateway struct {
	client *proxy.Client
}

// New creates a new HTTP gateway for the reviews service.
func New(registry discovery.Registry, httpClient *http.Client, logger *zap.Logger, scope tally.Scope) *Gateway {
	return &Gateway{proxy.New("reviews", registry, httpClient, logger, scope)}
}

// Create stores a new review.
func (g *Gateway) Create(ctx context.Context, r *model.Review) error {
	return g.client.Call(ctx, http.MethodPost, path(r.Pseudo, r.Hash), r).Err()
}

// Get returns the review of hash written by pseudo.
func (g *Gateway) Get(ctx context.Context, pseudo, hash string) (*model.Review, error) {
	var r model.Review
	if err := g.client.Call(ctx, http.MethodGet, path(pseudo, hash), nil).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListByPseudo returns the reviews written by pseudo.
func (g *Gateway) ListByPseudo(ctx context.Context, pseudo string) ([]model.Review, error) {
	return g.list(ctx, "/reviews/users/"+url.PathEscape(pseudo))
}

// ListByHash returns the reviews of a video.
func (g *Gateway) ListByHash(ctx context.Context, hash string) ([]model.Review, error) {
	return g.list(ctx, "/reviews/videos/"+url.PathEscape(hash))
}

// Best returns the best rated videos. A zero limit uses the reviews
// service default.
func (g *Gateway) Best(ctx context.Context, limit int) ([]videomodel.Video, error) {
	p := "/reviews/best"
	if limit > 0 {
		p += "?limit=" + strconv.Itoa(limit)
	}
	var videos []videomodel.Video
	if err := g.client.Call(ctx, http.MethodGet, p, nil).Decode(&videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// Update replaces a review.
func (g *Gateway) Update(ctx context.Context, r *model.Review) error {
	return g.client.Call(ctx, http.MethodPut, path(r.Pseudo, r.Hash), r).Err()
}

// Delete removes the review of hash written by pseudo.
func (g *Gateway) Delete(ctx context.Context, pseudo, hash string) error {
	return g.client.Call(ctx, http.MethodDelete, path(pseudo, hash), nil).Err()
}

func (g *Gateway) list(ctx context.Context, p string) ([]model.Review, error) {
	var reviews []model.Review
	if err := g.client.Call(ctx, http.MethodGet, p, nil).Decode(&reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func path(pseudo, hash string) string {
	return "/reviews/users/" + url.PathEscape(pseudo) + "/videos/" + url.PathEscape(hash)
}
