package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authtestutil "github.com/abhishek622/catflix/authentication/pkg/testutil"
	"github.com/abhishek622/catflix/gateway/pkg/testutil"
	"github.com/abhishek622/catflix/pkg/discovery/memory"
	reviewmodel "github.com/abhishek622/catflix/reviews/pkg/model"
	reviewstestutil "github.com/abhishek622/catflix/reviews/pkg/testutil"
	userstestutil "github.com/abhishek622/catflix/users/pkg/testutil"
	videomodel "github.com/abhishek622/catflix/videos/pkg/model"
	videostestutil "github.com/abhishek622/catflix/videos/pkg/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mesh struct {
	t       *testing.T
	gateway *httptest.Server
}

func startMesh(t *testing.T) *mesh {
	t.Helper()
	registry := memory.NewRegistry()
	services := map[string]http.Handler{
		"authentication": authtestutil.NewTestAuthenticationHTTPHandler("system-test-secret"),
		"users":          userstestutil.NewTestUsersHTTPHandler(registry),
		"videos":         videostestutil.NewTestVideosHTTPHandler(registry),
		"reviews":        reviewstestutil.NewTestReviewsHTTPHandler(registry),
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	for name, h := range services {
		srv := httptest.NewServer(h)
		t.Cleanup(srv.Close)
		id := name + "-1"
		require.NoError(t, registry.Register(ctx, id, name, strings.TrimPrefix(srv.URL, "http://")))
		go func() {
			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					_ = registry.ReportHealthyState(id, name)
				}
			}
		}()
	}
	gw := httptest.NewServer(testutil.NewTestGatewayHTTPHandler(registry))
	t.Cleanup(gw.Close)
	return &mesh{t: t, gateway: gw}
}

func (m *mesh) with(t *testing.T) *mesh {
	return &mesh{t: t, gateway: m.gateway}
}

func (m *mesh) do(method, path, token string, body any) (int, []byte) {
	m.t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(m.t, err)
		reader = strings.NewReader(string(payload))
	}
	req, err := http.NewRequest(method, m.gateway.URL+path, reader)
	require.NoError(m.t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(m.t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(m.t, err)
	return resp.StatusCode, b
}

func (m *mesh) expect(want int, method, path, token string, body any) []byte {
	m.t.Helper()
	status, b := m.do(method, path, token, body)
	require.Equal(m.t, want, status, "%s %s: %s", method, path, b)
	return b
}

func (m *mesh) signUp(pseudo string) string {
	m.t.Helper()
	m.expect(http.StatusCreated, http.MethodPost, "/users/"+pseudo, "", map[string]string{
		"pseudo": pseudo, "firstname": strings.ToUpper(pseudo[:1]) + pseudo[1:], "lastname": "Cat", "password": pseudo + "-pw",
	})
	return string(m.expect(http.StatusOK, http.MethodPost, "/auth", "", map[string]string{
		"pseudo": pseudo, "password": pseudo + "-pw",
	}))
}

func video(hash, author string) videomodel.Video {
	return videomodel.Video{Hash: hash, Name: "video " + hash, Author: author, CreationYear: 2021, Duration: 90}
}

func review(pseudo, hash string, rating int) reviewmodel.Review {
	return reviewmodel.Review{Pseudo: pseudo, Hash: hash, Rating: rating}
}

func (m *mesh) publish(token string, v videomodel.Video) {
	m.t.Helper()
	m.expect(http.StatusCreated, http.MethodPost, "/videos/"+v.Hash, token, v)
}

func (m *mesh) rate(token string, r reviewmodel.Review) {
	m.t.Helper()
	m.expect(http.StatusCreated, http.MethodPost, "/reviews/users/"+r.Pseudo+"/videos/"+r.Hash, token, r)
}

func (m *mesh) best(path string) []string {
	m.t.Helper()
	var videos []videomodel.Video
	require.NoError(m.t, json.Unmarshal(m.expect(http.StatusOK, http.MethodGet, path, "", nil), &videos))
	hashes := []string{}
	for _, v := range videos {
		hashes = append(hashes, v.Hash)
	}
	return hashes
}

func TestSystem(t *testing.T) {
	m := startMesh(t)
	alice, bob, carol := m.signUp("alice"), m.signUp("bob"), m.signUp("carol")

	m.publish(alice, video("h1", "alice"))
	m.publish(alice, video("h2", "alice"))
	m.publish(bob, video("h3", "bob"))

	m.rate(alice, review("alice", "h1", 8))
	m.rate(bob, review("bob", "h1", 10))
	m.rate(carol, review("carol", "h2", 5))

	t.Run("best videos ordered by mean rating", func(t *testing.T) {
		m := m.with(t)
		if diff := cmp.Diff([]string{"h1", "h2"}, m.best("/videos/best")); diff != "" {
			t.Errorf("best videos mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"h1"}, m.best("/videos/best?limit=1")); diff != "" {
			t.Errorf("limited best videos mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("duplicate review conflicts", func(t *testing.T) {
		m := m.with(t)
		m.expect(http.StatusConflict, http.MethodPost, "/reviews/users/alice/videos/h1", alice, review("alice", "h1", 2))
	})

	t.Run("review of unknown video is rejected", func(t *testing.T) {
		m := m.with(t)
		m.expect(http.StatusBadRequest, http.MethodPost, "/reviews/users/bob/videos/h9", bob, review("bob", "h9", 2))
	})

	t.Run("publishing needs the author token", func(t *testing.T) {
		m := m.with(t)
		m.expect(http.StatusUnauthorized, http.MethodPost, "/videos/h9", "", video("h9", "carol"))
		m.expect(http.StatusForbidden, http.MethodPost, "/videos/h9", bob, video("h9", "carol"))
	})

	t.Run("overlong password is bad input", func(t *testing.T) {
		m := m.with(t)
		m.expect(http.StatusBadRequest, http.MethodPost, "/users/dave", "", map[string]string{
			"pseudo": "dave", "firstname": "Dave", "lastname": "Cat", "password": strings.Repeat("p", 80),
		})
		m.expect(http.StatusNotFound, http.MethodGet, "/users/dave", "", nil)
		m.expect(http.StatusBadRequest, http.MethodPost, "/auth", "", map[string]string{
			"pseudo": "dave", "password": strings.Repeat("p", 80),
		})
	})

	t.Run("ownership", func(t *testing.T) {
		m := m.with(t)
		v := video("h1", "alice")
		v.Name = "stolen"
		m.expect(http.StatusForbidden, http.MethodPut, "/videos/h1", bob, v)
		m.expect(http.StatusUnauthorized, http.MethodPut, "/videos/h1", "", v)
		m.expect(http.StatusUnauthorized, http.MethodPut, "/videos/h1", "not-a-token", v)
		m.expect(http.StatusForbidden, http.MethodDelete, "/videos/h1", bob, nil)
		m.expect(http.StatusForbidden, http.MethodDelete, "/users/alice", bob, nil)
		m.expect(http.StatusForbidden, http.MethodPut, "/reviews/users/alice/videos/h1", bob, review("alice", "h1", 0))

		v.Author = "bob"
		m.expect(http.StatusForbidden, http.MethodPut, "/videos/h1", bob, v)

		v = video("h1", "alice")
		v.Name = "renamed"
		m.expect(http.StatusOK, http.MethodPut, "/videos/h1", alice, v)
	})

	t.Run("video cascade removes only its reviews", func(t *testing.T) {
		m := m.with(t)
		m.expect(http.StatusOK, http.MethodDelete, "/videos/h2", alice, nil)
		m.expect(http.StatusNotFound, http.MethodGet, "/videos/h2", "", nil)
		m.expect(http.StatusNotFound, http.MethodGet, "/reviews/users/carol/videos/h2", "", nil)
		m.expect(http.StatusOK, http.MethodGet, "/reviews/users/bob/videos/h1", "", nil)
		if diff := cmp.Diff([]string{"h1"}, m.best("/videos/best")); diff != "" {
			t.Errorf("best videos mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("user cascade", func(t *testing.T) {
		m := m.with(t)
		m.rate(alice, review("alice", "h3", 7))
		m.expect(http.StatusOK, http.MethodDelete, "/users/alice", alice, nil)

		m.expect(http.StatusNotFound, http.MethodGet, "/users/alice", "", nil)
		m.expect(http.StatusNotFound, http.MethodGet, "/videos/h1", "", nil)
		m.expect(http.StatusNotFound, http.MethodGet, "/reviews/users/alice/videos/h1", "", nil)
		m.expect(http.StatusNotFound, http.MethodGet, "/reviews/users/alice/videos/h3", "", nil)
		m.expect(http.StatusNotFound, http.MethodGet, "/reviews/users/bob/videos/h1", "", nil)
		assert.JSONEq(t, `[]`, string(m.expect(http.StatusOK, http.MethodGet, "/users/alice/videos", "", nil)))
		assert.JSONEq(t, `[]`, string(m.expect(http.StatusOK, http.MethodGet, "/users/alice/reviews", "", nil)))
		m.expect(http.StatusOK, http.MethodGet, "/videos/h3", "", nil)

		m.expect(http.StatusUnauthorized, http.MethodPost, "/auth", "", map[string]string{"pseudo": "alice", "password": "alice-pw"})
		m.expect(http.StatusUnauthorized, http.MethodDelete, "/users/alice", alice, nil)
	})

	t.Run("deleting absent entities is not found", func(t *testing.T) {
		m := m.with(t)
		m.expect(http.StatusNotFound, http.MethodDelete, "/videos/h1", bob, nil)
		m.expect(http.StatusNotFound, http.MethodDelete, "/reviews/users/bob/videos/h1", bob, nil)
	})

	t.Run("reviews of a video", func(t *testing.T) {
		m := m.with(t)
		m.rate(carol, review("carol", "h3", 6))
		var reviews []reviewmodel.Review
		require.NoError(t, json.Unmarshal(m.expect(http.StatusOK, http.MethodGet, "/videos/h3/reviews", "", nil), &reviews))
		require.Len(t, reviews, 1)
		assert.Equal(t, "carol", reviews[0].Pseudo)
	})
}
