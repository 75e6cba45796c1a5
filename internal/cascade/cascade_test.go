package cascade

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func recordingStep(target string, calls *[]string, err error) Step {
	return Step{Target: target, Run: func(context.Context) error {
		*calls = append(*calls, target)
		return err
	}}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		errs      map[string]error
		wantCalls []string
		wantErr   error
	}{
		{
			name:      "all steps succeed",
			wantCalls: []string{"reviews", "videos", "authentication"},
		},
		{
			name:      "not found is consistent",
			errs:      map[string]error{"videos": fmt.Errorf("videos DELETE: %w", apperr.ErrNotFound)},
			wantCalls: []string{"reviews", "videos", "authentication"},
		},
		{
			name:      "upstream failure aborts",
			errs:      map[string]error{"videos": fmt.Errorf("status 500: %w", apperr.ErrUpstreamUnavailable)},
			wantCalls: []string{"reviews", "videos"},
			wantErr:   apperr.ErrUpstreamUnavailable,
		},
		{
			name:      "classified failure aborts as upstream",
			errs:      map[string]error{"reviews": fmt.Errorf("reviews: %w", apperr.ErrInvalidInput)},
			wantCalls: []string{"reviews"},
			wantErr:   apperr.ErrUpstreamUnavailable,
		},
		{
			name:      "unclassified failure aborts as upstream",
			errs:      map[string]error{"authentication": errors.New("connection reset")},
			wantCalls: []string{"reviews", "videos", "authentication"},
			wantErr:   apperr.ErrUpstreamUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			p := New(zap.NewNop(), nil)
			err := p.Run(context.Background(), "alice",
				recordingStep("reviews", &calls, tt.errs["reviews"]),
				recordingStep("videos", &calls, tt.errs["videos"]),
				recordingStep("authentication", &calls, tt.errs["authentication"]),
			)
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, apperr.ErrInvalidInput)
		})
	}
}
