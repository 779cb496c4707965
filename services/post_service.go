package services

import (
	"context"
	"errors"

	"github.com/postboard/postboard-backend/internal/store"
	"github.com/postboard/postboard-backend/types"
)

const postResource = "post"

// PostService exposes post operations with the same contract as UserService.
type PostService struct {
	store store.PostStore
}

func NewPostService(s store.PostStore) *PostService {
	return &PostService{store: s}
}

func (s *PostService) Create(ctx context.Context, input types.PostCreate) (*types.Post, error) {
	post, err := s.store.Create(ctx, input)
	if err != nil {
		return nil, translateStoreError(postResource, "create", err)
	}
	return post, nil
}

func (s *PostService) GetByID(ctx context.Context, id int64) (*types.Post, error) {
	post, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, translateStoreError(postResource, "get", err)
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context, skip, take int) ([]*types.Post, int64, error) {
	posts, total, err := s.store.List(ctx, skip, take)
	if err != nil {
		return nil, 0, translateStoreError(postResource, "list", err)
	}
	return posts, total, nil
}

func (s *PostService) Update(ctx context.Context, id int64, update types.PostUpdate) (*types.Post, error) {
	post, err := s.store.Update(ctx, id, update)
	if err != nil {
		return nil, translateStoreError(postResource, "update", err)
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id int64) (*types.Post, error) {
	post, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, translateStoreError(postResource, "delete", err)
	}
	return post, nil
}
