package middleware

import (
	"errors"
	"net/http"
	"strings"

	"portfolio_api/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
	AuthRoleKey = "authRole"
)

// TokenVerifier turns a bearer token into session claims
type TokenVerifier interface {
	Verify(token string) (*utils.JWTClaims, error)
}

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifier.Verify(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": tokenErrorMessage(err)})
			return
		}

		// Set user information in context
		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}

// bearerToken strips an optional "Bearer" scheme. A scheme with no token is
// empty. Anything else is handed to the verifier as is and fails there.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) >= 6 && strings.EqualFold(header[:6], "bearer") {
		rest := header[6:]
		if rest == "" {
			return ""
		}
		if rest[0] == ' ' || rest[0] == '\t' {
			return strings.TrimSpace(rest)
		}
	}
	return header
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, utils.ErrMissingToken):
		return "No token, authorization denied"
	case errors.Is(err, utils.ErrExpiredToken):
		return "Token has expired"
	default:
		return "Token is not valid"
	}
}
