package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
)

// ServiceInterface is the post business logic surface. Requester identity is
// threaded explicitly: nil means an anonymous caller.
type ServiceInterface interface {
	// ListPosts returns one page of publicly visible posts, most recently
	// published first, plus the total count of visible posts.
	ListPosts(ctx context.Context, page int) ([]model.PostResponse, int, error)

	// GetPost returns a post by id, or ErrPostNotFound when the id does not
	// exist or the post is not publicly visible.
	GetPost(ctx context.Context, id uuid.UUID) (*model.PostResponse, error)

	// CreatePost validates and persists a new post owned by the requester
	CreatePost(ctx context.Context, requesterID *uuid.UUID, req model.CreatePostRequest) (*model.PostResponse, error)

	// UpdatePost applies the fields present in req to the requester's post.
	// The post is resolved ignoring visibility so an owner can edit drafts.
	UpdatePost(ctx context.Context, requesterID *uuid.UUID, postID uuid.UUID, req model.UpdatePostRequest) (*model.PostResponse, error)

	// DeletePost permanently removes the requester's post
	DeletePost(ctx context.Context, requesterID *uuid.UUID, postID uuid.UUID) error
}
