package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/abhishek622/catflix/authentication/pkg/model"
	"github.com/abhishek622/catflix/internal/proxy"
	"github.com/abhishek622/catflix/pkg/discovery"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Gateway defines an HTTP gateway for the authentication service.
type Gateway struct {
	client *proxy.Client
}

// New creates a new HTTP gateway for the authentication service.
func New(registry discovery.Registry, httpClient *http.Client, logger *zap.Logger, scope tally.Scope) *Gateway {
	return &Gateway{proxy.New("authentication", registry, httpClient, logger, scope)}
}

// Create stores credentials for a new user.
func (g *Gateway) Create(ctx context.Context, creds model.Credentials) error {
	return g.client.Call(ctx, http.MethodPost, path(creds.Pseudo), creds).Err()
}

// Update replaces the credentials of a user.
func (g *Gateway) Update(ctx context.Context, creds model.Credentials) error {
	return g.client.Call(ctx, http.MethodPut, path(creds.Pseudo), creds).Err()
}

// Delete removes the credentials of a user.
func (g *Gateway) Delete(ctx context.Context, pseudo string) error {
	return g.client.Call(ctx, http.MethodDelete, path(pseudo), nil).Err()
}

func path(pseudo string) string {
	return "/authentication/" + url.PathEscape(pseudo)
}
