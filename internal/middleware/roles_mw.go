package middleware

import (
	"errors"
	"net/http"

	"portfolio_api/internal/model"

	"github.com/gin-gonic/gin"
)

// ErrForbidden means the session is valid but lacks the required capability.
var ErrForbidden = errors.New("access denied")

// RequireCapability rejects sessions whose role does not carry capability.
// It must run after JWTAuthMiddleware.
func RequireCapability(capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(AuthRoleKey)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		if !model.HasCapability(role, capability) {
			_ = c.Error(ErrForbidden)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}

		c.Next()
	}
}
