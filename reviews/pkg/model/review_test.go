package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewValid(t *testing.T) {
	tests := []struct {
		name string
		r    Review
		want bool
	}{
		{"valid", Review{Pseudo: "alice", Hash: "h1", Rating: 7}, true},
		{"lowest", Review{Pseudo: "alice", Hash: "h1", Rating: 0}, true},
		{"highest", Review{Pseudo: "alice", Hash: "h1", Rating: 10}, true},
		{"negative", Review{Pseudo: "alice", Hash: "h1", Rating: -1}, false},
		{"too high", Review{Pseudo: "alice", Hash: "h1", Rating: 11}, false},
		{"no pseudo", Review{Hash: "h1", Rating: 5}, false},
		{"blank hash", Review{Pseudo: "alice", Hash: "  ", Rating: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Valid())
		})
	}
}

func TestReviewHidesID(t *testing.T) {
	b, err := json.Marshal(Review{ID: 42, Pseudo: "alice", Hash: "h1", Rating: 7})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "42")
	assert.NotContains(t, string(b), `"id"`)
}

func TestReviewEventDecoding(t *testing.T) {
	var e ReviewEvent
	require.NoError(t, json.Unmarshal([]byte(`{"pseudo":"alice","hash":"h1","rating":8,"comment":"purr","providerId":"import","eventType":"put"}`), &e))
	assert.Equal(t, ReviewEventTypePut, e.EventType)
	assert.Equal(t, "alice", e.Pseudo)
	assert.Equal(t, 8, e.Rating)
}
