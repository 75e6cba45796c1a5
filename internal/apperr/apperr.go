// Package apperr defines the error taxonomy shared by every catflix service
// and its mapping onto HTTP statuses.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidInput is returned for malformed or missing fields and for
	// identifier mismatches between path and body.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyExists is returned when a create collides with an existing identifier.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFound is returned when no record exists for an identifier.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned for a missing or invalid credential token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when a valid token acts outside its owner's scope.
	ErrForbidden = errors.New("forbidden")
	// ErrUpstreamUnavailable is returned for any unclassified failure of a
	// dependency. It is never downgraded by callers.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// HTTPStatus maps err onto the status a handler responds with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
