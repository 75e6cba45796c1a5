package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: fmt.Errorf("video: %w", ErrInvalidInput), want: http.StatusBadRequest},
		{name: "already exists", err: ErrAlreadyExists, want: http.StatusConflict},
		{name: "not found", err: ErrNotFound, want: http.StatusNotFound},
		{name: "unauthorized", err: ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "forbidden", err: ErrForbidden, want: http.StatusForbidden},
		{name: "upstream", err: fmt.Errorf("cascade: %w", ErrUpstreamUnavailable), want: http.StatusBadGateway},
		{name: "upstream wins over wrapped not found", err: fmt.Errorf("%w: %w", ErrUpstreamUnavailable, ErrNotFound), want: http.StatusBadGateway},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
