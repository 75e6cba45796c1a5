package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/abhishek622/catflix/internal/proxy"
	"github.com/abhishek622/catflix/pkg/discovery"
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

// DeleteByAuthor removes every video authored by author, with their reviews.
func (g *Gateway) DeleteByAuthor(ctx context.Context, author string) error {
	return g.client.Call(ctx, http.MethodDelete, "/videos/user/"+url.PathEscape(author), nil).Err()
}
