package types

import "time"

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	Published bool      `json:"published"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostCreate is a validated create-post payload. New posts start unpublished.
type PostCreate struct {
	Title    string  `json:"title" yaml:"title"`
	Content  *string `json:"content,omitempty" yaml:"content,omitempty"`
	AuthorID string  `json:"authorId" yaml:"authorId"`
}

// PostUpdate is a validated partial update. Nil fields are left unchanged.
type PostUpdate struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Published *bool   `json:"published,omitempty"`
	AuthorID  *string `json:"authorId,omitempty"`
}
