package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/postboard/postboard-backend/internal/store"
	"github.com/postboard/postboard-backend/types"
)

const userColumns = `id, email, name, created_at, updated_at`

// UserStore implements store.UserStore.
type UserStore struct {
	db DB
}

var _ store.UserStore = (*UserStore)(nil)

func NewUserStore(db DB) *UserStore {
	return &UserStore{db: db}
}

func scanUser(row pgx.Row) (*types.User, error) {
	u := &types.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserStore) Create(ctx context.Context, input types.UserCreate) (*types.User, error) {
	query := `
		INSERT INTO users (email, name)
		VALUES ($1, $2)
		RETURNING ` + userColumns

	u, err := scanUser(s.db.QueryRow(ctx, query, input.Email, input.Name))
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*types.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

func (s *UserStore) List(ctx context.Context, offset, limit int) ([]*types.User, int64, error) {
	pageSQL := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`
	countSQL := `SELECT COUNT(*) FROM users`

	users := make([]*types.User, 0, limit)
	total, err := listPage(ctx, s.db, pageSQL, countSQL, offset, limit, func(rows pgx.Rows) error {
		u, err := scanUser(rows)
		if err != nil {
			return err
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

// Update applies the non-nil fields of update.
func (s *UserStore) Update(ctx context.Context, id string, update types.UserUpdate) (*types.User, error) {
	query := `
		UPDATE users
		SET email = COALESCE($2, email),
		    name = COALESCE($3, name),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(s.db.QueryRow(ctx, query, id, update.Email, update.Name))
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return u, nil
}

// Delete removes the user and, through the foreign key, their posts.
func (s *UserStore) Delete(ctx context.Context, id string) (*types.User, error) {
	query := `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns

	u, err := scanUser(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("delete user %s: %w", id, err)
	}
	return u, nil
}
