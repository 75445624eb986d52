package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/service"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/validate"
	"blog-backend/pkg/logger"
)

// =====================================================
// POST HANDLER
// =====================================================

type PostHandler struct {
	postService service.ServiceInterface
	listPath    string // absolute URL of the listing, used in pagination links
}

func NewPostHandler(postService service.ServiceInterface, listPath string) *PostHandler {
	return &PostHandler{
		postService: postService,
		listPath:    listPath,
	}
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListPosts lists publicly visible posts
// GET /api/v1/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	posts, total, err := h.postService.ListPosts(c.Request.Context(), page)
	if err != nil {
		mapPostError(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, posts, h.listPath, page, model.PerPage, len(posts), total)
}

// GetPost gets a visible post by ID
// GET /api/v1/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot name any post
		response.NotFound(c, "Post not found")
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		mapPostError(c, err)
		return
	}

	response.Data(c, http.StatusOK, post)
}

// =====================================================
// AUTHENTICATED ENDPOINTS
// =====================================================

// CreatePost creates a new post owned by the requester
// POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), middleware.RequesterID(c), req)
	if err != nil {
		mapPostError(c, err)
		return
	}

	response.Data(c, http.StatusCreated, post)
}

// UpdatePost updates the requester's post
// PUT /api/v1/posts/:id
// PATCH /api/v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Post not found")
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), middleware.RequesterID(c), postID, req)
	if err != nil {
		mapPostError(c, err)
		return
	}

	response.Data(c, http.StatusOK, post)
}

// DeletePost deletes the requester's post
// DELETE /api/v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Post not found")
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), middleware.RequesterID(c), postID); err != nil {
		mapPostError(c, err)
		return
	}

	response.NoContent(c)
}

// =====================================================
// ERROR MAPPING
// =====================================================

func mapPostError(c *gin.Context, err error) {
	var validationErr *validate.Error

	switch {
	case errors.As(err, &validationErr):
		response.ValidationFailed(c, validationErr.Fields)
	case errors.Is(err, model.ErrUnauthenticated):
		response.Unauthorized(c, "Authentication required")
	case errors.Is(err, model.ErrNotPostOwner):
		response.Forbidden(c, "You can only modify your own posts")
	case errors.Is(err, model.ErrPostNotFound):
		response.NotFound(c, "Post not found")
	default:
		logger.Error("post handler error", err)
		response.InternalServerError(c, "Something went wrong")
	}
}
