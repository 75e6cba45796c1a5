package testutil

import (
	"net/http"

	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/pkg/discovery"
	"github.com/abhishek622/catflix/reviews/internal/controller/reviews"
	usersgateway "github.com/abhishek622/catflix/reviews/internal/gateway/users/http"
	videosgateway "github.com/abhishek622/catflix/reviews/internal/gateway/videos/http"
	httphandler "github.com/abhishek622/catflix/reviews/internal/handler/http"
	"github.com/abhishek622/catflix/reviews/internal/repository/memory"
	"go.uber.org/zap"
)

// NewTestReviewsHTTPHandler creates a reviews HTTP handler backed by memory
// storage to be used in tests. Peers are resolved through registry.
func NewTestReviewsHTTPHandler(registry discovery.Registry) http.Handler {
	logger := zap.NewNop()
	ctrl := reviews.New(
		memory.New(),
		usersgateway.New(registry, nil, logger, nil),
		videosgateway.New(registry, nil, logger, nil),
		nil,
		reviews.DefaultBestLimit,
		logger,
		nil,
	)
	r := httputil.NewRouter(logger)
	httphandler.New(ctrl, logger).Register(r)
	return r
}
