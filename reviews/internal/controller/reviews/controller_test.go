package reviews

import (
	"context"
	"fmt"
	"testing"
	"time"

	gen "github.com/abhishek622/catflix/gen/mock/reviews/controller"
	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/reviews/internal/repository/memory"
	"github.com/abhishek622/catflix/reviews/pkg/model"
	videomodel "github.com/abhishek622/catflix/videos/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fixture struct {
	ctrl     *Controller
	repo     *memory.Repository
	users    *gen.MockusersGateway
	videos   *gen.MockvideosGateway
	ingester *gen.MockreviewIngester
}

func newFixture(t *testing.T) *fixture {
	mc := gomock.NewController(t)
	f := &fixture{
		repo:     memory.New(),
		users:    gen.NewMockusersGateway(mc),
		videos:   gen.NewMockvideosGateway(mc),
		ingester: gen.NewMockreviewIngester(mc),
	}
	f.ctrl = New(f.repo, f.users, f.videos, f.ingester, 0, zap.NewNop(), nil)
	return f
}

func (f *fixture) referencesExist(times int) {
	f.users.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(nil).Times(times)
	f.videos.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&videomodel.Video{}, nil).Times(times)
}

func TestCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.referencesExist(2)

	require.NoError(t, f.ctrl.Create(ctx, &model.Review{Pseudo: "alice", Hash: "h1", Rating: 7, Comment: "nice"}))
	err := f.ctrl.Create(ctx, &model.Review{Pseudo: "alice", Hash: "h1", Rating: 3})
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)

	got, err := f.ctrl.Get(ctx, "alice", "h1")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Rating)
}

func TestCreateInvalid(t *testing.T) {
	f := newFixture(t)
	err := f.ctrl.Create(context.Background(), &model.Review{Pseudo: "alice", Hash: "h1", Rating: 11})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestCreateMissingReferences(t *testing.T) {
	ctx := context.Background()

	t.Run("user", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Exists(gomock.Any(), "ghost").Return(fmt.Errorf("users: %w", apperr.ErrNotFound))
		err := f.ctrl.Create(ctx, &model.Review{Pseudo: "ghost", Hash: "h1", Rating: 5})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})
	t.Run("video", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Exists(gomock.Any(), "alice").Return(nil)
		f.videos.EXPECT().Get(gomock.Any(), "h9").Return(nil, fmt.Errorf("videos: %w", apperr.ErrNotFound))
		err := f.ctrl.Create(ctx, &model.Review{Pseudo: "alice", Hash: "h9", Rating: 5})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})
	t.Run("users unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Exists(gomock.Any(), "alice").Return(fmt.Errorf("users: %w", apperr.ErrUpstreamUnavailable))
		err := f.ctrl.Create(ctx, &model.Review{Pseudo: "alice", Hash: "h1", Rating: 5})
		assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
		assert.NotErrorIs(t, err, apperr.ErrInvalidInput)
	})
}

func TestUpdateKeepsID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.referencesExist(3)

	first := &model.Review{Pseudo: "alice", Hash: "h1", Rating: 7}
	require.NoError(t, f.ctrl.Create(ctx, first))
	require.NoError(t, f.ctrl.Update(ctx, &model.Review{Pseudo: "alice", Hash: "h1", Rating: 2, Comment: "meh"}))

	got, err := f.ctrl.Get(ctx, "alice", "h1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, 2, got.Rating)

	assert.ErrorIs(t, f.ctrl.Update(ctx, &model.Review{Pseudo: "bob", Hash: "h1", Rating: 2}), apperr.ErrNotFound)
}

func TestDeletes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, r := range []model.Review{
		{Pseudo: "alice", Hash: "h1", Rating: 1},
		{Pseudo: "alice", Hash: "h2", Rating: 2},
		{Pseudo: "bob", Hash: "h1", Rating: 3},
		{Pseudo: "bob", Hash: "h3", Rating: 4},
	} {
		require.NoError(t, f.repo.Create(ctx, &r))
	}

	require.NoError(t, f.ctrl.DeleteByHash(ctx, "h1"))
	byBob, err := f.ctrl.ListByPseudo(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, byBob, 1)
	assert.Equal(t, "h3", byBob[0].Hash)

	require.NoError(t, f.ctrl.DeleteByPseudo(ctx, "alice"))
	ofH2, err := f.ctrl.ListByHash(ctx, "h2")
	require.NoError(t, err)
	assert.Empty(t, ofH2)

	require.NoError(t, f.ctrl.DeleteByPseudo(ctx, "nobody"))
	assert.ErrorIs(t, f.ctrl.Delete(ctx, "alice", "h2"), apperr.ErrNotFound)
	require.NoError(t, f.ctrl.Delete(ctx, "bob", "h3"))
}

func TestStartIngestion(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan model.ReviewEvent, 4)
	ch <- model.ReviewEvent{Review: model.Review{Pseudo: "alice", Hash: "h1", Rating: 4}, ProviderID: "p", EventType: model.ReviewEventTypePut}
	ch <- model.ReviewEvent{Review: model.Review{Pseudo: "alice", Hash: "h1", Rating: 9}, ProviderID: "p", EventType: model.ReviewEventTypePut}
	ch <- model.ReviewEvent{Review: model.Review{Pseudo: "bob", Hash: "h1"}, ProviderID: "p", EventType: model.ReviewEventTypeDelete}
	ch <- model.ReviewEvent{Review: model.Review{Pseudo: "bob", Hash: "h1"}, ProviderID: "p", EventType: "upsert"}
	close(ch)

	f.ingester.EXPECT().Ingest(gomock.Any()).Return(ch, nil)
	// put, then put again: create collides and falls back to update.
	f.referencesExist(3)

	done := make(chan error, 1)
	go func() { done <- f.ctrl.StartIngestion(ctx) }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("ingestion did not stop")
	}

	got, err := f.ctrl.Get(context.Background(), "alice", "h1")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Rating)
}
