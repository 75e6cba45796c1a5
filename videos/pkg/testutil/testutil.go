package testutil

import (
	"net/http"

	"github.com/abhishek622/catflix/internal/cascade"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/pkg/discovery"
	"github.com/abhishek622/catflix/videos/internal/controller/videos"
	reviewsgateway "github.com/abhishek622/catflix/videos/internal/gateway/reviews/http"
	usersgateway "github.com/abhishek622/catflix/videos/internal/gateway/users/http"
	httphandler "github.com/abhishek622/catflix/videos/internal/handler/http"
	"github.com/abhishek622/catflix/videos/internal/repository/memory"
	"go.uber.org/zap"
)

// NewTestVideosHTTPHandler creates a videos HTTP handler backed by memory
// storage to be used in tests. Peers are resolved through registry.
func NewTestVideosHTTPHandler(registry discovery.Registry) http.Handler {
	logger := zap.NewNop()
	ctrl := videos.New(
		memory.New(),
		usersgateway.New(registry, nil, logger, nil),
		reviewsgateway.New(registry, nil, logger, nil),
		cascade.New(logger, nil),
		logger,
	)
	r := httputil.NewRouter(logger)
	httphandler.New(ctrl, logger).Register(r)
	return r
}
