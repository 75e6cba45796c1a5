package users

import (
	"context"
	"fmt"
	"strings"
	"testing"

	authmodel "github.com/abhishek622/catflix/authentication/pkg/model"
	gen "github.com/abhishek622/catflix/gen/mock/users/controller"
	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/internal/cascade"
	"github.com/abhishek622/catflix/users/internal/repository"
	"github.com/abhishek622/catflix/users/internal/repository/memory"
	"github.com/abhishek622/catflix/users/pkg/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mocks struct {
	reviews     *gen.MockreviewsGateway
	videos      *gen.MockvideosGateway
	credentials *gen.MockcredentialsGateway
}

func newController(t *testing.T) (*Controller, *memory.Repository, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		reviews:     gen.NewMockreviewsGateway(ctrl),
		videos:      gen.NewMockvideosGateway(ctrl),
		credentials: gen.NewMockcredentialsGateway(ctrl),
	}
	repo := memory.New()
	logger := zap.NewNop()
	return New(repo, m.reviews, m.videos, m.credentials, cascade.New(logger, nil), logger), repo, m
}

var alice = model.UserWithCredentials{Pseudo: "alice", Firstname: "Alice", Lastname: "Liddell", Password: "pw"}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	c, repo, m := newController(t)

	m.credentials.EXPECT().Create(gomock.Any(), authmodel.Credentials{Pseudo: "alice", Password: "pw"}).Return(nil)
	require.NoError(t, c.Create(ctx, alice))

	got, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	if diff := cmp.Diff(alice.User(), *got); diff != "" {
		t.Errorf("stored user mismatch (-want +got):\n%s", diff)
	}

	assert.ErrorIs(t, c.Create(ctx, alice), apperr.ErrAlreadyExists)
}

func TestCreateRejectsInvalid(t *testing.T) {
	c, _, _ := newController(t)
	tests := map[string]model.UserWithCredentials{
		"no pseudo":     {Firstname: "A", Lastname: "L", Password: "pw"},
		"no firstname":  {Pseudo: "a", Lastname: "L", Password: "pw"},
		"no lastname":   {Pseudo: "a", Firstname: "A", Password: "pw"},
		"no password":   {Pseudo: "a", Firstname: "A", Lastname: "L"},
		"blank":         {Pseudo: " ", Firstname: " ", Lastname: " ", Password: " "},
		"long password": {Pseudo: "a", Firstname: "A", Lastname: "L", Password: strings.Repeat("x", authmodel.MaxPasswordLength+8)},
	}
	for name, u := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, c.Create(context.Background(), u), apperr.ErrInvalidInput)
		})
	}
}

func TestCreateCredentialsFailureKeepsNoUser(t *testing.T) {
	ctx := context.Background()
	c, repo, m := newController(t)

	m.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("authentication: %w", apperr.ErrAlreadyExists))
	err := c.Create(ctx, alice)
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, apperr.ErrAlreadyExists)

	_, err = repo.Get(ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateReleasesCredentialsWhenUserCannotBeStored(t *testing.T) {
	ctx := context.Background()
	c, repo, m := newController(t)

	concurrentCreate := func(context.Context, authmodel.Credentials) error {
		return repo.Create(ctx, &model.User{Pseudo: "alice", Firstname: "Other", Lastname: "Alice"})
	}
	gomock.InOrder(
		m.credentials.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(concurrentCreate),
		m.credentials.EXPECT().Delete(gomock.Any(), "alice").Return(nil),
	)
	assert.ErrorIs(t, c.Create(ctx, alice), apperr.ErrAlreadyExists)
}

func TestCreateLogsOrphanedCredentials(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)
	mc := gomock.NewController(t)
	credentials := gen.NewMockcredentialsGateway(mc)
	repo := memory.New()
	c := New(repo, gen.NewMockreviewsGateway(mc), gen.NewMockvideosGateway(mc), credentials, cascade.New(logger, nil), logger)

	credentials.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, authmodel.Credentials) error {
		return repo.Create(ctx, &model.User{Pseudo: "alice", Firstname: "Other", Lastname: "Alice"})
	})
	credentials.EXPECT().Delete(gomock.Any(), "alice").Return(fmt.Errorf("authentication: %w", apperr.ErrUpstreamUnavailable))

	assert.ErrorIs(t, c.Create(ctx, alice), apperr.ErrAlreadyExists)
	entries := logs.FilterLevelExact(zap.ErrorLevel).FilterField(zap.String("pseudo", "alice")).All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "Orphaned credentials")
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	c, repo, m := newController(t)
	require.NoError(t, repo.Create(ctx, &model.User{Pseudo: "alice", Firstname: "A", Lastname: "L"}))

	m.credentials.EXPECT().Update(gomock.Any(), authmodel.Credentials{Pseudo: "alice", Password: "pw"}).Return(nil)
	require.NoError(t, c.Update(ctx, alice))
	got, err := c.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Liddell", got.Lastname)

	bob := alice
	bob.Pseudo = "bob"
	assert.ErrorIs(t, c.Update(ctx, bob), apperr.ErrNotFound)
}

func TestDeleteCascadesInOrder(t *testing.T) {
	ctx := context.Background()
	c, repo, m := newController(t)
	require.NoError(t, repo.Create(ctx, &model.User{Pseudo: "alice", Firstname: "A", Lastname: "L"}))

	gomock.InOrder(
		m.reviews.EXPECT().DeleteByPseudo(gomock.Any(), "alice").Return(nil),
		m.videos.EXPECT().DeleteByAuthor(gomock.Any(), "alice").Return(nil),
		m.credentials.EXPECT().Delete(gomock.Any(), "alice").Return(nil),
	)
	require.NoError(t, c.Delete(ctx, "alice"))

	_, err := c.Get(ctx, "alice")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteMissing(t *testing.T) {
	c, _, _ := newController(t)
	assert.ErrorIs(t, c.Delete(context.Background(), "ghost"), apperr.ErrNotFound)
}

func TestDeleteTreatsMissingDependentsAsConsistent(t *testing.T) {
	ctx := context.Background()
	c, repo, m := newController(t)
	require.NoError(t, repo.Create(ctx, &model.User{Pseudo: "alice", Firstname: "A", Lastname: "L"}))

	m.reviews.EXPECT().DeleteByPseudo(gomock.Any(), "alice").Return(nil)
	m.videos.EXPECT().DeleteByAuthor(gomock.Any(), "alice").Return(nil)
	m.credentials.EXPECT().Delete(gomock.Any(), "alice").Return(fmt.Errorf("authentication: %w", apperr.ErrNotFound))
	require.NoError(t, c.Delete(ctx, "alice"))
}

func TestDeleteAbortsOnUpstreamFailure(t *testing.T) {
	ctx := context.Background()
	c, repo, m := newController(t)
	require.NoError(t, repo.Create(ctx, &model.User{Pseudo: "alice", Firstname: "A", Lastname: "L"}))

	m.reviews.EXPECT().DeleteByPseudo(gomock.Any(), "alice").Return(nil)
	m.videos.EXPECT().DeleteByAuthor(gomock.Any(), "alice").Return(fmt.Errorf("videos: %w", apperr.ErrUpstreamUnavailable))
	err := c.Delete(ctx, "alice")
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)

	_, err = c.Get(ctx, "alice")
	assert.NoError(t, err)
}
