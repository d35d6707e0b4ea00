// Package server assembles the HTTP router from repositories, the login
// limiter and configuration.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"portfolio_api/internal/config"
	"portfolio_api/internal/handler"
	"portfolio_api/internal/middleware"
	"portfolio_api/internal/model"
	"portfolio_api/internal/ratelimit"
	"portfolio_api/internal/repository"
	"portfolio_api/internal/service"
	"portfolio_api/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger reports whether the backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are the collaborators NewRouter wires together.
type Dependencies struct {
	Config     *config.Config
	DB         Pinger
	Users      repository.UserRepository
	Projects   repository.ProjectRepository
	Experience repository.ExperienceRepository
	Messages   repository.MessageRepository
	Limiter    ratelimit.Limiter
}

// NewRouter builds the gin engine serving /api and /health.
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	router := gin.New()
	var trusted []string
	if len(cfg.TrustedProxies) > 0 {
		trusted = cfg.TrustedProxies
	}
	if err := router.SetTrustedProxies(trusted); err != nil {
		log.Error().Err(err).Msg("Invalid trusted proxies, forwarding headers are ignored")
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.FrontendURL}
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader}
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader, "Retry-After", "RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset"}
	router.Use(cors.New(corsCfg))

	// --- Initialize Services ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpiration)
	authService := service.NewAuthService(deps.Users, jwtUtil)

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(authService)
	contentWriteMW := middleware.RequireCapability(model.CapabilityContentWrite)
	messagesReadMW := middleware.RequireCapability(model.CapabilityMessagesRead)
	loginLimitMW := middleware.RateLimit(deps.Limiter, loginLimitMessage(cfg.LoginRateWindow))

	// --- Register Routes ---
	api := router.Group("/api")
	handler.NewAuthHandler(authService).RegisterAuthRoutes(api, loginLimitMW)
	handler.NewProjectHandler(service.NewProjectService(deps.Projects)).RegisterProjectRoutes(api, jwtAuthMW, contentWriteMW)
	handler.NewExperienceHandler(service.NewExperienceService(deps.Experience)).RegisterExperienceRoutes(api, jwtAuthMW, contentWriteMW)
	handler.NewMessageHandler(service.NewMessageService(deps.Messages)).RegisterMessageRoutes(api, jwtAuthMW, messagesReadMW)

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := deps.DB.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	return router
}

func loginLimitMessage(window time.Duration) string {
	if window <= 0 {
		window = ratelimit.DefaultWindow
	}
	if window%time.Minute == 0 {
		return fmt.Sprintf("Too many login attempts, please try again after %d minutes", int(window/time.Minute))
	}
	return fmt.Sprintf("Too many login attempts, please try again after %s", window)
}
