package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"portfolio_api/internal/config"
	"portfolio_api/internal/logger"
	"portfolio_api/internal/ratelimit"
	"portfolio_api/internal/repository"
	"portfolio_api/internal/server"
	"portfolio_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		log.Fatal().Err(err).Msg("Failed to auto-migrate database")
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	projectRepo := repository.NewProjectRepository(dbPool)
	experienceRepo := repository.NewExperienceRepository(dbPool)
	messageRepo := repository.NewMessageRepository(dbPool)

	// --- Seed ---
	if err := service.NewSeedService(userRepo, projectRepo, experienceRepo).Seed(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	// --- Login Rate Limiter ---
	var limiter ratelimit.Limiter
	if cfg.UseRedisLimiter() {
		rdb, err := ratelimit.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to redis")
		}
		defer rdb.Close()
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimitPrefix, cfg.LoginRateMax, cfg.LoginRateWindow)
		log.Info().Msg("Login rate limiting uses redis")
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.LoginRateMax, cfg.LoginRateWindow)
	}

	// --- Setup Gin Router ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(server.Dependencies{
		Config:     cfg,
		DB:         dbPool,
		Users:      userRepo,
		Projects:   projectRepo,
		Experience: experienceRepo,
		Messages:   messageRepo,
		Limiter:    limiter,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
