package middleware

import (
	"net/http"

	"github.com/servetisikli/takstore-backend/internal/auth"
	"github.com/servetisikli/takstore-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares.
const (
	ContextUserID  = "userID"
	ContextIsAdmin = "isAdmin"
)

// RequireAuth validates the access-token cookie and stores the session
// claims in the request context.
func RequireAuth(accessSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.AccessTokenCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized, no token found"})
			return
		}

		claims, err := auth.ParseToken(token, accessSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// OptionalAuth attaches the session claims when a valid access cookie is
// present and proceeds anonymously otherwise (guest checkout).
func OptionalAuth(accessSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.AccessTokenCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := auth.ParseToken(token, accessSecret)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RequireAdmin rejects authenticated callers without the admin flag.
// Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get(ContextIsAdmin)
		if !exists || isAdmin != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Unauthorized, admin privileges required"})
			return
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
