package middleware

import (
	"net/http"

	"github.com/ghiaccio/backend/internal/infrastructure/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by SessionAuth
const (
	sessionIDKey     = "session_id"
	sessionUserIDKey = "session_user_id"
	sessionRoleKey   = "session_role"
)

// SessionAuth resolves the session cookie against the store and, when valid,
// attaches the session identity to the request context. It never aborts:
// routes that need a user chain RequireAuth or RequireAdmin after it.
func SessionAuth(cookieName string, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		data, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			// Unknown or expired session; proceed anonymously
			c.Next()
			return
		}

		c.Set(sessionIDKey, sessionID)
		c.Set(sessionUserIDKey, data.UserID)
		c.Set(sessionRoleKey, data.Role)
		c.Next()
	}
}

// RequireAuth aborts with 401 when no authenticated user is attached
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSessionUserID(c) == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the session belongs to an administrator
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSessionUserID(c) == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}
		if GetSessionRole(c) != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_FORBIDDEN",
					"message": "Administrator access required",
				},
			})
			return
		}
		c.Next()
	}
}

// GetSessionID returns the resolved session ID, or "" when anonymous
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

// GetSessionUserID returns the authenticated user ID, or uuid.Nil when anonymous
func GetSessionUserID(c *gin.Context) uuid.UUID {
	if v, exists := c.Get(sessionUserIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetSessionRole returns the session role, or "" when anonymous
func GetSessionRole(c *gin.Context) string {
	return c.GetString(sessionRoleKey)
}
