package testutil

import (
	"net/http"
	"time"

	"github.com/abhishek622/catflix/authentication/internal/controller/authentication"
	httphandler "github.com/abhishek622/catflix/authentication/internal/handler/http"
	"github.com/abhishek622/catflix/authentication/internal/repository/memory"
	"github.com/abhishek622/catflix/authentication/internal/token"
	"github.com/abhishek622/catflix/internal/httputil"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// NewTestAuthenticationHTTPHandler creates an authentication HTTP handler
// backed by memory storage to be used in tests.
func NewTestAuthenticationHTTPHandler(secret string) http.Handler {
	logger := zap.NewNop()
	tokens := token.New(func() []byte { return []byte(secret) }, time.Hour)
	ctrl := authentication.New(memory.New(), tokens, bcrypt.MinCost, logger, nil)
	r := httputil.NewRouter(logger)
	httphandler.New(ctrl, logger).Register(r)
	return r
}
