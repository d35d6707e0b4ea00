package handler

import (
	"errors"
	"net/http"

	"portfolio_api/internal/model"
	"portfolio_api/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		respondError(c, err, "Failed to login")
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{Token: token, User: user.Public()})
}

// RegisterAuthRoutes registers auth routes. limitMW runs before the login
// handler on every attempt.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, limitMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", limitMW, h.Login)
	}
}
