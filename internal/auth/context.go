package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/Heybro1122/ShopHub/internal/user"
	"github.com/Heybro1122/ShopHub/pkg/logger"
)

const (
	userIDHeader = "X-User-ID"
	userIDKey    = "user_id"
)

// GetUserID returns the authenticated user id set by RequireUser, or an
// empty string when the request is anonymous.
func GetUserID(c *gin.Context) string {
	if val, ok := c.Get(userIDKey); ok {
		if id, ok := val.(string); ok {
			return id
		}
	}
	return c.GetHeader(userIDHeader)
}

// RequireUser rejects requests that carry no user identity. Identity is
// trusted from the X-User-ID header; verification happens upstream.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// RequireAdmin additionally checks the user's role against the user store.
func RequireAdmin(users user.Repository, logger logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		u, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			logger.Error("failed to look up user for admin check", zap.String("user_id", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
			return
		}
		if u == nil || u.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
