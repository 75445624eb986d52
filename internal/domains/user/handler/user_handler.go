package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/validate"
	"blog-backend/pkg/logger"
)

// =====================================================
// USER HANDLER
// =====================================================

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates a new account
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	auth, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		mapUserError(c, err)
		return
	}

	response.Data(c, http.StatusCreated, auth)
}

// Login checks credentials and returns an access token
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	auth, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		mapUserError(c, err)
		return
	}

	response.Data(c, http.StatusOK, auth)
}

// GetProfile returns the authenticated user's profile
// GET /api/v1/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	requesterID := middleware.RequesterID(c)
	if requesterID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), *requesterID)
	if err != nil {
		mapUserError(c, err)
		return
	}

	response.Data(c, http.StatusOK, profile)
}

// =====================================================
// ERROR MAPPING
// =====================================================

func mapUserError(c *gin.Context, err error) {
	var validationErr *validate.Error

	switch {
	case errors.As(err, &validationErr):
		response.ValidationFailed(c, validationErr.Fields)
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.Conflict(c, "Email already registered")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "User not found")
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "Something went wrong")
	}
}
