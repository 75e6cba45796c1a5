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

// Gateway defines an HTTP gateway for the reviews service.
type Gateway struct {
	client *proxy.Client
}

// New creates a new HTTP gateway for the reviews service.
func New(registry discovery.Registry, httpClient *http.Client, logger *zap.Logger, scope tally.Scope) *Gateway {
	return &Gateway{proxy.New("reviews", registry, httpClient, logger, scope)}
}

// DeleteByPseudo removes every review written by pseudo.
func (g *Gateway) DeleteByPseudo(ctx context.Context, pseudo string) error {
	return g.client.Call(ctx, http.MethodDelete, "/reviews/users/"+url.PathEscape(pseudo), nil).Err()
}
