package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/postboard/postboard-backend/errors"
	"github.com/postboard/postboard-backend/logger"
	"github.com/postboard/postboard-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

type fakeUsers struct {
	created []types.UserCreate
	err     error
}

func (f *fakeUsers) Create(_ context.Context, input types.UserCreate) (*types.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, input)
	return &types.User{ID: "8d1c5a8e-3f2b-4c6d-9e7f-0a1b2c3d4e5f", Email: input.Email, Name: input.Name}, nil
}

func (f *fakeUsers) GetByID(context.Context, string) (*types.User, error) { return nil, nil }
func (f *fakeUsers) List(context.Context, int, int) ([]*types.User, int64, error) {
	return nil, 0, nil
}
func (f *fakeUsers) Update(context.Context, string, types.UserUpdate) (*types.User, error) {
	return nil, nil
}
func (f *fakeUsers) Delete(context.Context, string) (*types.User, error) { return nil, nil }

type fakePosts struct {
	created []types.PostCreate
	updates map[int64]types.PostUpdate
}

func (f *fakePosts) Create(_ context.Context, input types.PostCreate) (*types.Post, error) {
	f.created = append(f.created, input)
	return &types.Post{ID: int64(len(f.created)), Title: input.Title, AuthorID: input.AuthorID}, nil
}

func (f *fakePosts) GetByID(context.Context, int64) (*types.Post, error) { return nil, nil }
func (f *fakePosts) List(context.Context, int, int) ([]*types.Post, int64, error) {
	return nil, 0, nil
}
func (f *fakePosts) Update(_ context.Context, id int64, update types.PostUpdate) (*types.Post, error) {
	if f.updates == nil {
		f.updates = make(map[int64]types.PostUpdate)
	}
	f.updates[id] = update
	return &types.Post{ID: id}, nil
}
func (f *fakePosts) Delete(context.Context, int64) (*types.Post, error) { return nil, nil }

const sampleFixtures = `
users:
  - email: ada@example.com
    name: Ada Lovelace
    posts:
      - title: Notes on the Analytical Engine
        content: The engine weaves algebraic patterns.
        published: true
      - title: Draft
  - email: charles@example.com
`

func TestParseFixtures(t *testing.T) {
	fx, err := parseFixtures(strings.NewReader(sampleFixtures))
	require.NoError(t, err)
	require.Len(t, fx.Users, 2)

	ada := fx.Users[0]
	assert.Equal(t, "ada@example.com", ada.Email)
	require.NotNil(t, ada.Name)
	assert.Equal(t, "Ada Lovelace", *ada.Name)
	require.Len(t, ada.Posts, 2)
	assert.True(t, ada.Posts[0].Published)
	assert.Nil(t, ada.Posts[1].Content)
	assert.Nil(t, fx.Users[1].Name)
}

func TestParseFixtures_UnknownField(t *testing.T) {
	_, err := parseFixtures(strings.NewReader("users:\n  - email: a@b.co\n    role: admin\n"))
	assert.Error(t, err)
}

func TestParseFixtures_Empty(t *testing.T) {
	fx, err := parseFixtures(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, fx.Users)
}

func TestSeed(t *testing.T) {
	fx, err := parseFixtures(strings.NewReader(sampleFixtures))
	require.NoError(t, err)

	users, posts := &fakeUsers{}, &fakePosts{}
	res, err := seed(context.Background(), fx, users, posts)
	require.NoError(t, err)

	assert.Equal(t, seedResult{Users: 2, Posts: 2}, res)
	require.Len(t, posts.created, 2)
	assert.Equal(t, "8d1c5a8e-3f2b-4c6d-9e7f-0a1b2c3d4e5f", posts.created[0].AuthorID)
	require.Contains(t, posts.updates, int64(1))
	assert.True(t, *posts.updates[1].Published)
	assert.NotContains(t, posts.updates, int64(2))
}

func TestSeed_InvalidFixture(t *testing.T) {
	fx, err := parseFixtures(strings.NewReader("users:\n  - email: not-an-email\n"))
	require.NoError(t, err)

	users := &fakeUsers{}
	_, err = seed(context.Background(), fx, users, &fakePosts{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "users[0]")

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Invalid email address"}, appErr.Details.Get("email"))
	assert.Empty(t, users.created)
}

func TestSeed_StoreFailure(t *testing.T) {
	fx, err := parseFixtures(strings.NewReader(sampleFixtures))
	require.NoError(t, err)

	dup := apperrors.NewDatabaseError("Unique constraint failed on fields: email", "23505", errors.New("raw"))
	res, err := seed(context.Background(), fx, &fakeUsers{err: dup}, &fakePosts{})
	require.Error(t, err)
	assert.Zero(t, res.Users)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "23505", appErr.Code)
}
