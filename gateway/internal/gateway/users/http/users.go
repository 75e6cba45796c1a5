package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/abhishek622/catflix/internal/proxy"
	"github.com/abhishek622/catflix/pkg/discovery"
	"github.com/abhishek622/catflix/users/pkg/model"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Gateway defines an HTTP gateway for the users service.
type Gateway struct {
	client *proxy.Client
}

// New creates a new HTTP gateway for the users service.
func New(registry discovery.Registry, httpClient *http.Client, logger *zap.Logger, scope tally.Scope) *Gateway {
	return &Gateway{proxy.New("users", registry, httpClient, logger, scope)}
}

// Create registers a user with its credentials.
func (g *Gateway) Create(ctx context.Context, u model.UserWithCredentials) error {
	return g.client.Call(ctx, http.MethodPost, path(u.Pseudo), u).Err()
}

// Get returns a user profile.
func (g *Gateway) Get(ctx context.Context, pseudo string) (*model.User, error) {
	var u model.User
	if err := g.client.Call(ctx, http.MethodGet, path(pseudo), nil).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Update replaces a user profile and its credentials.
func (g *Gateway) Update(ctx context.Context, u model.UserWithCredentials) error {
	return g.client.Call(ctx, http.MethodPut, path(u.Pseudo), u).Err()
}

// Delete removes a user and everything it owns.
func (g *Gateway) Delete(ctx context.Context, pseudo string) error {
	return g.client.Call(ctx, http.MethodDelete, path(pseudo), nil).Err()
}

func path(pseudo string) string {
	return "/users/" + url.PathEscape(pseudo)
}
