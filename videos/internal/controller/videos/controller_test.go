package videos

import (
	"context"
	"fmt"
	"testing"

	gen "github.com/abhishek622/catflix/gen/mock/videos/controller"
	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/internal/cascade"
	"github.com/abhishek622/catflix/videos/internal/repository/memory"
	"github.com/abhishek622/catflix/videos/pkg/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func video(hash, author string) *model.Video {
	return &model.Video{Hash: hash, Name: "Video " + hash, Author: author, CreationYear: 2020, Duration: 90, URL: "https://catflix.example/" + hash}
}

func newController(t *testing.T) (*Controller, *memory.Repository, *gen.MockusersGateway, *gen.MockreviewsGateway) {
	ctrl := gomock.NewController(t)
	users := gen.NewMockusersGateway(ctrl)
	reviews := gen.NewMockreviewsGateway(ctrl)
	repo := memory.New()
	logger := zap.NewNop()
	return New(repo, users, reviews, cascade.New(logger, nil), logger), repo, users, reviews
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	c, _, users, _ := newController(t)

	users.EXPECT().Exists(gomock.Any(), "alice").Return(nil).Times(2)
	require.NoError(t, c.Create(ctx, video("h1", "alice")))
	assert.ErrorIs(t, c.Create(ctx, video("h1", "alice")), apperr.ErrAlreadyExists)

	got, err := c.Get(ctx, "h1")
	require.NoError(t, err)
	if diff := cmp.Diff(video("h1", "alice"), got); diff != "" {
		t.Errorf("video mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateUnknownAuthor(t *testing.T) {
	c, _, users, _ := newController(t)
	users.EXPECT().Exists(gomock.Any(), "ghost").Return(fmt.Errorf("users: %w", apperr.ErrNotFound))
	assert.ErrorIs(t, c.Create(context.Background(), video("h1", "ghost")), apperr.ErrInvalidInput)
}

func TestCreateUsersUnavailable(t *testing.T) {
	c, _, users, _ := newController(t)
	users.EXPECT().Exists(gomock.Any(), "alice").Return(fmt.Errorf("users: %w", apperr.ErrUpstreamUnavailable))
	err := c.Create(context.Background(), video("h1", "alice"))
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestCreateInvalid(t *testing.T) {
	c, _, _, _ := newController(t)
	v := video("h1", "alice")
	v.Duration = 0
	assert.ErrorIs(t, c.Create(context.Background(), v), apperr.ErrInvalidInput)
}

func TestUpdateMissing(t *testing.T) {
	c, _, users, _ := newController(t)
	users.EXPECT().Exists(gomock.Any(), "alice").Return(nil)
	assert.ErrorIs(t, c.Update(context.Background(), video("h9", "alice")), apperr.ErrNotFound)
}

func TestDeleteCascadesToReviews(t *testing.T) {
	ctx := context.Background()
	c, repo, _, reviews := newController(t)
	require.NoError(t, repo.Create(ctx, video("h1", "alice")))

	reviews.EXPECT().DeleteByHash(gomock.Any(), "h1").Return(nil)
	require.NoError(t, c.Delete(ctx, "h1"))
	_, err := c.Get(ctx, "h1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, c.Delete(ctx, "h1"), apperr.ErrNotFound)
}

func TestDeleteKeepsVideoOnReviewsFailure(t *testing.T) {
	ctx := context.Background()
	c, repo, _, reviews := newController(t)
	require.NoError(t, repo.Create(ctx, video("h1", "alice")))

	reviews.EXPECT().DeleteByHash(gomock.Any(), "h1").Return(fmt.Errorf("reviews: %w", apperr.ErrUpstreamUnavailable))
	assert.ErrorIs(t, c.Delete(ctx, "h1"), apperr.ErrUpstreamUnavailable)
	_, err := c.Get(ctx, "h1")
	assert.NoError(t, err)
}

func TestDeleteByAuthor(t *testing.T) {
	ctx := context.Background()
	c, repo, _, reviews := newController(t)
	require.NoError(t, repo.Create(ctx, video("h1", "alice")))
	require.NoError(t, repo.Create(ctx, video("h2", "alice")))
	require.NoError(t, repo.Create(ctx, video("h3", "bob")))

	reviews.EXPECT().DeleteByHash(gomock.Any(), "h1").Return(nil)
	reviews.EXPECT().DeleteByHash(gomock.Any(), "h2").Return(fmt.Errorf("reviews: %w", apperr.ErrNotFound))
	require.NoError(t, c.DeleteByAuthor(ctx, "alice"))

	left, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Video{*video("h3", "bob")}, left)

	require.NoError(t, c.DeleteByAuthor(ctx, "nobody"))
}

func TestDeleteAllAbortsOnFailure(t *testing.T) {
	ctx := context.Background()
	c, repo, _, reviews := newController(t)
	require.NoError(t, repo.Create(ctx, video("h1", "alice")))
	require.NoError(t, repo.Create(ctx, video("h2", "bob")))

	gomock.InOrder(
		reviews.EXPECT().DeleteByHash(gomock.Any(), "h1").Return(nil),
		reviews.EXPECT().DeleteByHash(gomock.Any(), "h2").Return(fmt.Errorf("reviews: %w", apperr.ErrUpstreamUnavailable)),
	)
	assert.ErrorIs(t, c.DeleteAll(ctx), apperr.ErrUpstreamUnavailable)

	left, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, left, 2)

	reviews.EXPECT().DeleteByHash(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	require.NoError(t, c.DeleteAll(ctx))
	left, err = c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, left)
}
