package store

import (
	"context"

	"github.com/postboard/postboard-backend/types"
)

// UserStore persists users. GetByID returns ErrNotFound for a missing row.
type UserStore interface {
	Create(ctx context.Context, input types.UserCreate) (*types.User, error)
	GetByID(ctx context.Context, id string) (*types.User, error)
	// List returns one page ordered by creation time, newest first, together with the total
	// row count read from the same snapshot.
	List(ctx context.Context, offset, limit int) ([]*types.User, int64, error)
	Update(ctx context.Context, id string, update types.UserUpdate) (*types.User, error)
	Delete(ctx context.Context, id string) (*types.User, error)
}

// PostStore persists posts. GetByID returns ErrNotFound for a missing row.
type PostStore interface {
	Create(ctx context.Context, input types.PostCreate) (*types.Post, error)
	GetByID(ctx context.Context, id int64) (*types.Post, error)
	List(ctx context.Context, offset, limit int) ([]*types.Post, int64, error)
	Update(ctx context.Context, id int64, update types.PostUpdate) (*types.Post, error)
	Delete(ctx context.Context, id int64) (*types.Post, error)
}
