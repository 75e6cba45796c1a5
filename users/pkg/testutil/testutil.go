package testutil

import (
	"net/http"

	"github.com/abhishek622/catflix/internal/cascade"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/pkg/discovery"
	"github.com/abhishek622/catflix/users/internal/controller/users"
	authgateway "github.com/abhishek622/catflix/users/internal/gateway/authentication/http"
	reviewsgateway "github.com/abhishek622/catflix/users/internal/gateway/reviews/http"
	videosgateway "github.com/abhishek622/catflix/users/internal/gateway/videos/http"
	httphandler "github.com/abhishek622/catflix/users/internal/handler/http"
	"github.com/abhishek622/catflix/users/internal/repository/memory"
	"go.uber.org/zap"
)

// NewTestUsersHTTPHandler creates a users HTTP handler backed by memory
// storage to be used in tests. Peers are resolved through registry.
func NewTestUsersHTTPHandler(registry discovery.Registry) http.Handler {
	logger := zap.NewNop()
	ctrl := users.New(
		memory.New(),
		reviewsgateway.New(registry, nil, logger, nil),
		videosgateway.New(registry, nil, logger, nil),
		authgateway.New(registry, nil, logger, nil),
		cascade.New(logger, nil),
		logger,
	)
	r := httputil.NewRouter(logger)
	httphandler.New(ctrl, logger).Register(r)
	return r
}
