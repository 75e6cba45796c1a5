package testutil

import (
	"net/http"

	"github.com/abhishek622/catflix/gateway/internal/controller/gateway"
	authgateway "github.com/abhishek622/catflix/gateway/internal/gateway/authentication/http"
	reviewsgateway "github.com/abhishek622/catflix/gateway/internal/gateway/reviews/http"
	usersgateway "github.com/abhishek622/catflix/gateway/internal/gateway/users/http"
	videosgateway "github.com/abhishek622/catflix/gateway/internal/gateway/videos/http"
	httphandler "github.com/abhishek622/catflix/gateway/internal/handler/http"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/pkg/discovery"
	"go.uber.org/zap"
)

// NewTestGatewayHTTPHandler creates a gateway HTTP handler to be used in
// tests. Services are resolved through registry.
func NewTestGatewayHTTPHandler(registry discovery.Registry) http.Handler {
	logger := zap.NewNop()
	ctrl := gateway.New(
		authgateway.New(registry, nil, logger, nil),
		usersgateway.New(registry, nil, logger, nil),
		videosgateway.New(registry, nil, logger, nil),
		reviewsgateway.New(registry, nil, logger, nil),
		logger,
		nil,
	)
	r := httputil.NewRouter(logger)
	httphandler.New(ctrl, logger).Register(r)
	return r
}
