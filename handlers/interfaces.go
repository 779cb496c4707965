package handlers

import (
	"context"

	"github.com/postboard/postboard-backend/types"
)

// UserServiceInterface defines the user service methods needed by handlers
type UserServiceInterface interface {
	Create(ctx context.Context, input types.UserCreate) (*types.User, error)
	GetByID(ctx context.Context, id string) (*types.User, error)
	List(ctx context.Context, skip, take int) ([]*types.User, int64, error)
	Update(ctx context.Context, id string, update types.UserUpdate) (*types.User, error)
	Delete(ctx context.Context, id string) (*types.User, error)
}

// PostServiceInterface defines the post service methods needed by handlers
type PostServiceInterface interface {
	Create(ctx context.Context, input types.PostCreate) (*types.Post, error)
	GetByID(ctx context.Context, id int64) (*types.Post, error)
	List(ctx context.Context, skip, take int) ([]*types.Post, int64, error)
	Update(ctx context.Context, id int64, update types.PostUpdate) (*types.Post, error)
	Delete(ctx context.Context, id int64) (*types.Post, error)
}

// HealthServiceInterface defines the health checks needed by handlers
type HealthServiceInterface interface {
	CheckHealth(ctx context.Context) types.HealthCheck
	CheckDatabase(ctx context.Context) types.HealthComponent
}
