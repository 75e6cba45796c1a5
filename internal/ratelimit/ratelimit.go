// Package ratelimit provides a token bucket limiter usable both as a gRPC
// ratelimit.Limiter and as HTTP middleware.
package ratelimit

import (
	"net/http"

	"golang.org/x/time/rate"
)

// Limiter rejects requests once the configured rate is exceeded.
type Limiter struct {
	l *rate.Limiter
}

// New creates a limiter allowing limit requests per second with the given burst capacity.
func New(limit int, burst int) *Limiter {
	return &Limiter{rate.NewLimiter(rate.Limit(limit), burst)}
}

// Limit returns true if the rate limit is exceeded, false if the request is allowed.
func (l *Limiter) Limit() bool {
	return !l.l.Allow()
}

// Middleware answers 429 to requests over the limit.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.Limit() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
