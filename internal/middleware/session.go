package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/service"
)

// TokenValidator reports whether a bearer session token is live.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (service.TokenStatus, error)
}

// SessionAuth guards protected routes: the client must present its session
// token before loading directory data. Invalid and expired tokens get the
// same response, so the client's recovery path is always the same (drop the
// token, log in again).
func SessionAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		status, err := validator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session_check_failed"})
			return
		}
		if !status.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_session"})
			return
		}

		c.Set("session_token", token)
		c.Next()
	}
}
