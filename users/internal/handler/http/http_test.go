package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhishek622/catflix/pkg/discovery/memory"
	"github.com/abhishek622/catflix/users/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestUsersRoutesWithoutPeers(t *testing.T) {
	h := testutil.NewTestUsersHTTPHandler(memory.NewRegistry())

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"read missing", http.MethodGet, "/users/ghost", "", http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/users/ghost", "", http.StatusNotFound},
		{"pseudo mismatch", http.MethodPost, "/users/alice", `{"pseudo":"bob","firstname":"B","lastname":"B","password":"pw"}`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/users/alice", `{"pseudo":`, http.StatusBadRequest},
		{"missing password", http.MethodPost, "/users/alice", `{"pseudo":"alice","firstname":"A","lastname":"L"}`, http.StatusBadRequest},
		{"update missing", http.MethodPut, "/users/ghost", `{"pseudo":"ghost","firstname":"G","lastname":"H","password":"pw"}`, http.StatusNotFound},
		{"authentication unreachable", http.MethodPost, "/users/alice", `{"pseudo":"alice","firstname":"A","lastname":"L","password":"pw"}`, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
