package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/pkg/discovery/memory"
	httphandler "github.com/abhishek622/catflix/reviews/internal/handler/http"
	"github.com/abhishek622/catflix/reviews/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewsRoutesWithoutPeers(t *testing.T) {
	h := testutil.NewTestReviewsHTTPHandler(memory.NewRegistry())

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"read missing", http.MethodGet, "/reviews/users/alice/videos/h1", "", http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/reviews/users/alice/videos/h1", "", http.StatusNotFound},
		{"bulk delete by pseudo", http.MethodDelete, "/reviews/users/alice", "", http.StatusOK},
		{"bulk delete by hash", http.MethodDelete, "/reviews/videos/h1", "", http.StatusOK},
		{"list by pseudo", http.MethodGet, "/reviews/users/alice", "", http.StatusOK},
		{"best empty", http.MethodGet, "/reviews/best", "", http.StatusOK},
		{"best bad limit", http.MethodGet, "/reviews/best?limit=0", "", http.StatusBadRequest},
		{"path mismatch", http.MethodPost, "/reviews/users/alice/videos/h1", `{"pseudo":"bob","hash":"h1","rating":5}`, http.StatusBadRequest},
		{"rating out of range", http.MethodPost, "/reviews/users/alice/videos/h1", `{"pseudo":"alice","hash":"h1","rating":42}`, http.StatusBadRequest},
		{"users unreachable", http.MethodPost, "/reviews/users/alice/videos/h1", `{"pseudo":"alice","hash":"h1","rating":5}`, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestParseLimit(t *testing.T) {
	n, err := httphandler.ParseLimit(httptest.NewRequest(http.MethodGet, "/reviews/best", nil))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = httphandler.ParseLimit(httptest.NewRequest(http.MethodGet, "/reviews/best?limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	for _, bad := range []string{"-1", "0", "three"} {
		_, err := httphandler.ParseLimit(httptest.NewRequest(http.MethodGet, "/reviews/best?limit="+bad, nil))
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	}
}
