package types

import "time"

// User is a registered author of posts.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserCreate is a validated create-user payload.
type UserCreate struct {
	Email string  `json:"email" yaml:"email"`
	Name  *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// UserUpdate is a validated partial update. Nil fields are left unchanged.
type UserUpdate struct {
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
}
