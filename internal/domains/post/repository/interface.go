package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
)

// =====================================================
// POST REPOSITORY INTERFACE
// =====================================================

type PostRepository interface {
	// Create persists a new post
	Create(ctx context.Context, post *model.Post) error

	// GetByID fetches a post by id with its author attached. Visibility is
	// NOT applied here: mutation paths need to resolve hidden posts too.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)

	// Update persists the content and publish-state fields of a post
	Update(ctx context.Context, post *model.Post) error

	// Delete removes a post permanently
	Delete(ctx context.Context, id uuid.UUID) error

	// ListVisible lists posts passing the visibility predicate at `now`,
	// ordered by published_at descending (id descending on ties), and
	// returns the page plus the total count of visible posts.
	ListVisible(ctx context.Context, now time.Time, page, limit int) ([]*model.Post, int, error)
}
