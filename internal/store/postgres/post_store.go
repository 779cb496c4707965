package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/postboard/postboard-backend/internal/store"
	"github.com/postboard/postboard-backend/types"
)

const postColumns = `id, title, content, published, author_id, created_at, updated_at`

// PostStore implements store.PostStore.
type PostStore struct {
	db DB
}

var _ store.PostStore = (*PostStore)(nil)

func NewPostStore(db DB) *PostStore {
	return &PostStore{db: db}
}

func scanPost(row pgx.Row) (*types.Post, error) {
	p := &types.Post{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Published,
		&p.AuthorID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostStore) Create(ctx context.Context, input types.PostCreate) (*types.Post, error) {
	query := `
		INSERT INTO posts (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING ` + postColumns

	p, err := scanPost(s.db.QueryRow(ctx, query, input.Title, input.Content, input.AuthorID))
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return p, nil
}

func (s *PostStore) GetByID(ctx context.Context, id int64) (*types.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	p, err := scanPost(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return p, nil
}

func (s *PostStore) List(ctx context.Context, offset, limit int) ([]*types.Post, int64, error) {
	pageSQL := `
		SELECT ` + postColumns + `
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	countSQL := `SELECT COUNT(*) FROM posts`

	posts := make([]*types.Post, 0, limit)
	total, err := listPage(ctx, s.db, pageSQL, countSQL, offset, limit, func(rows pgx.Rows) error {
		p, err := scanPost(rows)
		if err != nil {
			return err
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	return posts, total, nil
}

// Update applies the non-nil fields of update.
func (s *PostStore) Update(ctx context.Context, id int64, update types.PostUpdate) (*types.Post, error) {
	query := `
		UPDATE posts
		SET title = COALESCE($2, title),
		    content = COALESCE($3, content),
		    published = COALESCE($4, published),
		    author_id = COALESCE($5::uuid, author_id),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + postColumns

	p, err := scanPost(s.db.QueryRow(ctx, query,
		id,
		update.Title,
		update.Content,
		update.Published,
		update.AuthorID,
	))
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	return p, nil
}

func (s *PostStore) Delete(ctx context.Context, id int64) (*types.Post, error) {
	query := `DELETE FROM posts WHERE id = $1 RETURNING ` + postColumns

	p, err := scanPost(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("delete post %d: %w", id, err)
	}
	return p, nil
}
