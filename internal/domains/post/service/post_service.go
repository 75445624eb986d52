package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/policy"
	"blog-backend/internal/domains/post/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) ServiceInterface {
	return &postService{
		postRepo: postRepo,
	}
}

// =====================================================
// LIST POSTS
// =====================================================

func (s *postService) ListPosts(ctx context.Context, page int) ([]model.PostResponse, int, error) {
	if page < 1 {
		page = 1
	}

	posts, total, err := s.postRepo.ListVisible(ctx, time.Now().UTC(), page, model.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	responses := make([]model.PostResponse, 0, len(posts))
	for _, p := range posts {
		responses = append(responses, p.ToResponse())
	}

	return responses, total, nil
}

// =====================================================
// GET POST
// =====================================================

func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*model.PostResponse, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A hidden post must look exactly like a missing one: answering 403 or
	// anything else here would leak that the id exists.
	if !policy.Visible(post, time.Now().UTC()) {
		return nil, model.ErrPostNotFound
	}

	resp := post.ToResponse()
	return &resp, nil
}

// =====================================================
// CREATE POST
// =====================================================

func (s *postService) CreatePost(
	ctx context.Context,
	requesterID *uuid.UUID,
	req model.CreatePostRequest,
) (*model.PostResponse, error) {
	// Step 1: Require an authenticated requester
	if requesterID == nil {
		return nil, model.ErrUnauthenticated
	}

	// Step 2: Validate payload
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 3: Build entity, owner fixed to the requester
	now := time.Now().UTC()
	post := &model.Post{
		ID:          uuid.New(),
		UserID:      *requesterID,
		Title:       req.Title,
		Body:        req.Body,
		IsDraft:     *req.IsDraft,
		PublishedAt: req.PublishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Step 4: Persist
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// Step 5: Re-read to attach the author info
	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created post: %w", err)
	}

	resp := created.ToResponse()
	return &resp, nil
}

// =====================================================
// UPDATE POST
// =====================================================

func (s *postService) UpdatePost(
	ctx context.Context,
	requesterID *uuid.UUID,
	postID uuid.UUID,
	req model.UpdatePostRequest,
) (*model.PostResponse, error) {
	// Step 1: Resolve ignoring visibility; the owner must be able to edit
	// drafts and scheduled posts
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// Step 2: Require an authenticated requester
	if requesterID == nil {
		return nil, model.ErrUnauthenticated
	}

	// Step 3: Ownership check. Unlike the hidden-post read path this is a
	// 403, not a 404: the caller already holds a resolvable id.
	if !policy.CanMutate(requesterID, post) {
		return nil, model.ErrNotPostOwner
	}

	// Step 4: Validate payload
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 5: Apply only the fields present in the payload
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.IsDraft != nil {
		post.IsDraft = *req.IsDraft
	}
	if req.PublishedAt != nil {
		post.PublishedAt = req.PublishedAt
	}

	post.UpdatedAt = time.Now().UTC()

	// Step 6: Persist
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	resp := post.ToResponse()
	return &resp, nil
}

// =====================================================
// DELETE POST
// =====================================================

func (s *postService) DeletePost(
	ctx context.Context,
	requesterID *uuid.UUID,
	postID uuid.UUID,
) error {
	// Same resolution and ordering as update: 404 for a missing id, 401 for
	// anonymous, 403 for a non-owner
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if requesterID == nil {
		return model.ErrUnauthenticated
	}

	if !policy.CanMutate(requesterID, post) {
		return model.ErrNotPostOwner
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}
