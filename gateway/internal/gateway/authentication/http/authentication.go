package http

import (
	"context"
	"net/http"

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

// Connect exchanges credentials for a token.
func (g *Gateway) Connect(ctx context.Context, creds model.Credentials) (string, error) {
	return g.client.Call(ctx, http.MethodPost, "/authentication/connect", creds).Text()
}

// Verify returns the pseudo owning token.
func (g *Gateway) Verify(ctx context.Context, token string) (string, error) {
	return g.client.Call(ctx, http.MethodPost, "/authentication/verify", token).Text()
}
