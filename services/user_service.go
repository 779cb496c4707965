package services

import (
	"context"
	"errors"

	"github.com/postboard/postboard-backend/internal/store"
	"github.com/postboard/postboard-backend/types"
)

const userResource = "user"

// UserService exposes user operations. Each method makes exactly one store call and
// returns store failures as DatabaseErrors.
type UserService struct {
	store store.UserStore
}

func NewUserService(s store.UserStore) *UserService {
	return &UserService{store: s}
}

func (s *UserService) Create(ctx context.Context, input types.UserCreate) (*types.User, error) {
	user, err := s.store.Create(ctx, input)
	if err != nil {
		return nil, translateStoreError(userResource, "create", err)
	}
	return user, nil
}

// GetByID returns store.ErrNotFound unchanged when the user does not exist.
func (s *UserService) GetByID(ctx context.Context, id string) (*types.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, translateStoreError(userResource, "get", err)
	}
	return user, nil
}

// List returns users for the given window, newest first, and the total count.
func (s *UserService) List(ctx context.Context, skip, take int) ([]*types.User, int64, error) {
	users, total, err := s.store.List(ctx, skip, take)
	if err != nil {
		return nil, 0, translateStoreError(userResource, "list", err)
	}
	return users, total, nil
}

func (s *UserService) Update(ctx context.Context, id string, update types.UserUpdate) (*types.User, error) {
	user, err := s.store.Update(ctx, id, update)
	if err != nil {
		return nil, translateStoreError(userResource, "update", err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*types.User, error) {
	user, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, translateStoreError(userResource, "delete", err)
	}
	return user, nil
}
