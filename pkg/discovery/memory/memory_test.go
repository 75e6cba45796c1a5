package memory

import (
	"context"
	"testing"
	"time"

	"github.com/abhishek622/catflix/pkg/discovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	_, err := r.ServiceAddresses(ctx, "users")
	assert.ErrorIs(t, err, discovery.ErrNotFound)

	require.NoError(t, r.Register(ctx, "users-1", "users", "localhost:8081"))
	require.NoError(t, r.Register(ctx, "users-2", "users", "localhost:8082"))
	addrs, err := r.ServiceAddresses(ctx, "users")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"localhost:8081", "localhost:8082"}, addrs)

	require.NoError(t, r.ReportHealthyState("users-1", "users"))
	assert.Error(t, r.ReportHealthyState("users-3", "users"))
	assert.Error(t, r.ReportHealthyState("users-1", "videos"))

	require.NoError(t, r.Deregister(ctx, "users-2", "users"))
	addrs, err = r.ServiceAddresses(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost:8081"}, addrs)

	assert.ErrorIs(t, r.Deregister(ctx, "videos-1", "videos"), discovery.ErrNotFound)
}

func TestRegistrySkipsStaleInstances(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	require.NoError(t, r.Register(ctx, "videos-1", "videos", "localhost:8083"))
	r.serviceAddrs["videos"]["videos-1"].lastActive = time.Now().Add(-2 * healthyWindow)

	_, err := r.ServiceAddresses(ctx, "videos")
	assert.ErrorIs(t, err, discovery.ErrNotFound)

	require.NoError(t, r.ReportHealthyState("videos-1", "videos"))
	addrs, err := r.ServiceAddresses(ctx, "videos")
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost:8083"}, addrs)
}
