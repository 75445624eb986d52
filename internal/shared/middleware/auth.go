package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/pkg/jwt"
)

const requesterIDKey = "requesterID"

// Authenticate resolves the Authorization header into a requester identity.
//
// The header is optional: anonymous requests pass through with no requester
// set, and each handler decides whether an identity is required. A header
// that is present but malformed or carries an invalid token is rejected
// with 401 immediately.
func Authenticate(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid user ID in token"})
			c.Abort()
			return
		}

		c.Set(requesterIDKey, userID)
		c.Next()
	}
}

// RequesterID returns the authenticated requester, or nil for anonymous
// requests.
func RequesterID(c *gin.Context) *uuid.UUID {
	value, exists := c.Get(requesterIDKey)
	if !exists {
		return nil
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}

	return &userID
}
