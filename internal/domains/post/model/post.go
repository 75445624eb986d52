package model

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a blog post entity
type Post struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	// Content
	Title string `json:"title"`
	Body  string `json:"body"`

	// Publish state. A draft is never publicly visible; a non-draft is
	// visible once published_at has passed.
	IsDraft     bool       `json:"is_draft"`
	PublishedAt *time.Time `json:"published_at"`

	// Denormalized author info, filled by reads that join the users table
	Author *Author `json:"-"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Author is the owner info attached to post responses
type Author struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
