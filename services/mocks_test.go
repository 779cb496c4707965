package services

import (
	"context"

	"github.com/postboard/postboard-backend/types"
	"github.com/stretchr/testify/mock"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, input types.UserCreate) (*types.User, error) {
	args := m.Called(ctx, input)
	if u := args.Get(0); u != nil {
		return u.(*types.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) GetByID(ctx context.Context, id string) (*types.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*types.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) List(ctx context.Context, offset, limit int) ([]*types.User, int64, error) {
	args := m.Called(ctx, offset, limit)
	if u := args.Get(0); u != nil {
		return u.([]*types.User), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserStore) Update(ctx context.Context, id string, update types.UserUpdate) (*types.User, error) {
	args := m.Called(ctx, id, update)
	if u := args.Get(0); u != nil {
		return u.(*types.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) Delete(ctx context.Context, id string) (*types.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*types.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPostStore struct {
	mock.Mock
}

func (m *mockPostStore) Create(ctx context.Context, input types.PostCreate) (*types.Post, error) {
	args := m.Called(ctx, input)
	if p := args.Get(0); p != nil {
		return p.(*types.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostStore) GetByID(ctx context.Context, id int64) (*types.Post, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*types.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostStore) List(ctx context.Context, offset, limit int) ([]*types.Post, int64, error) {
	args := m.Called(ctx, offset, limit)
	if p := args.Get(0); p != nil {
		return p.([]*types.Post), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *mockPostStore) Update(ctx context.Context, id int64, update types.PostUpdate) (*types.Post, error) {
	args := m.Called(ctx, id, update)
	if p := args.Get(0); p != nil {
		return p.(*types.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostStore) Delete(ctx context.Context, id int64) (*types.Post, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*types.Post), args.Error(1)
	}
	return nil, args.Error(1)
}
