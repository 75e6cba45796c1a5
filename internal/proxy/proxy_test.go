package proxy

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/pkg/discovery/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{http.StatusOK, Success},
		{http.StatusCreated, Success},
		{http.StatusBadRequest, RemoteBadRequest},
		{http.StatusUnauthorized, RemoteUnauthorized},
		{http.StatusForbidden, RemoteForbidden},
		{http.StatusNotFound, RemoteNotFound},
		{http.StatusConflict, RemoteConflict},
		{http.StatusMethodNotAllowed, UnexpectedFailure},
		{http.StatusTooManyRequests, UnexpectedFailure},
		{http.StatusInternalServerError, UnexpectedFailure},
		{http.StatusBadGateway, UnexpectedFailure},
		{http.StatusMovedPermanently, UnexpectedFailure},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.status))
		})
	}
}

func TestOutcomeErr(t *testing.T) {
	tests := []struct {
		kind Kind
		want error
	}{
		{RemoteBadRequest, apperr.ErrInvalidInput},
		{RemoteUnauthorized, apperr.ErrUnauthorized},
		{RemoteForbidden, apperr.ErrForbidden},
		{RemoteNotFound, apperr.ErrNotFound},
		{RemoteConflict, apperr.ErrAlreadyExists},
		{UnexpectedFailure, apperr.ErrUpstreamUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := Outcome{Kind: tt.kind, Service: "videos", Method: http.MethodGet, Path: "/videos/h1"}.Err()
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.NoError(t, Outcome{Kind: Success}.Err())
}

func newPeer(t *testing.T, service string, h http.HandlerFunc) (*Client, *memory.Registry) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	registry := memory.NewRegistry()
	require.NoError(t, registry.Register(context.Background(), service+"-1", service, strings.TrimPrefix(srv.URL, "http://")))
	return New(service, registry, &http.Client{Timeout: 200 * time.Millisecond}, zap.NewNop(), nil), registry
}

func TestCallDecodesSuccess(t *testing.T) {
	var gotPath, gotRequestID, gotContentType string
	client, _ := newPeer(t, "videos", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get(httputil.RequestIDHeader)
		gotContentType = r.Header.Get("Content-Type")
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"hash": "h1"})
	})

	ctx := httputil.WithRequestID(context.Background(), "req-1")
	out := client.Call(ctx, http.MethodPut, "/videos/h1", map[string]string{"hash": "h1"})
	require.Equal(t, Success, out.Kind)

	var got map[string]string
	require.NoError(t, out.Decode(&got))
	assert.Equal(t, "h1", got["hash"])
	assert.Equal(t, "/videos/h1", gotPath)
	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, "application/json", gotContentType)
}

func TestCallTextBody(t *testing.T) {
	client, _ := newPeer(t, "authentication", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		httputil.WriteText(w, http.StatusOK, "pseudo-of-"+string(b))
	})

	text, err := client.Call(context.Background(), http.MethodPost, "/authentication/verify", "tok").Text()
	require.NoError(t, err)
	assert.Equal(t, "pseudo-of-tok", text)
}

func TestCallClassifiesStatuses(t *testing.T) {
	client, _ := newPeer(t, "users", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/users/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusConflict)
		}
	})

	out := client.Call(context.Background(), http.MethodGet, "/users/missing", nil)
	assert.Equal(t, RemoteNotFound, out.Kind)
	assert.ErrorIs(t, out.Err(), apperr.ErrNotFound)

	out = client.Call(context.Background(), http.MethodGet, "/users/broken", nil)
	assert.Equal(t, UnexpectedFailure, out.Kind)
	assert.Equal(t, http.StatusInternalServerError, out.Status)
	var upstream *UpstreamError
	require.ErrorAs(t, out.Err(), &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.Status)
	assert.ErrorIs(t, out.Err(), apperr.ErrUpstreamUnavailable)

	out = client.Call(context.Background(), http.MethodPost, "/users/alice", nil)
	assert.Equal(t, RemoteConflict, out.Kind)
}

func TestCallWithoutInstances(t *testing.T) {
	client := New("reviews", memory.NewRegistry(), nil, nil, nil)
	out := client.Call(context.Background(), http.MethodGet, "/reviews/best", nil)
	assert.Equal(t, UnexpectedFailure, out.Kind)
	assert.Zero(t, out.Status)
	assert.ErrorIs(t, out.Err(), apperr.ErrUpstreamUnavailable)
}

func TestCallTimeoutIsUnexpected(t *testing.T) {
	release := make(chan struct{})
	client, _ := newPeer(t, "videos", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	out := client.Call(context.Background(), http.MethodGet, "/videos", nil)
	assert.Equal(t, UnexpectedFailure, out.Kind)
	assert.Error(t, out.Cause)
	assert.ErrorIs(t, out.Err(), apperr.ErrUpstreamUnavailable)
}

func TestDecodeInvalidPayload(t *testing.T) {
	client, _ := newPeer(t, "videos", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteText(w, http.StatusOK, "not json")
	})
	var v map[string]string
	err := client.Call(context.Background(), http.MethodGet, "/videos/h1", nil).Decode(&v)
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
}
