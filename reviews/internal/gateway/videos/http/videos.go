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

// Get returns the video identified by hash.
func (g *Gateway) Get(ctx context.Context, hash string) (*model.Video, error) {
	var v model.Video
	if err := g.client.Call(ctx, http.MethodGet, "/videos/"+url.PathEscape(hash), nil).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}
