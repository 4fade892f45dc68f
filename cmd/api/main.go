package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/studevo/Studevo/config"
	_ "github.com/studevo/Studevo/docs" // Important for Swagger
	"github.com/studevo/Studevo/internal/delivery/http/api"
	"github.com/studevo/Studevo/internal/delivery/http/middleware"
	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/internal/repository"
	"github.com/studevo/Studevo/internal/usecase"
	"github.com/studevo/Studevo/pkg/auth"
	"github.com/studevo/Studevo/pkg/logger"
	"github.com/studevo/Studevo/pkg/redis"
	"github.com/studevo/Studevo/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Studevo API
// @version         1.0
// @description     Opportunity board backend: accounts, student CVs and organization posts.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	if err := logger.Init(cfg.LogDevelopment); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Log.Fatalw("Invalid configuration", "error", err)
	}
	gin.SetMode(cfg.GinMode)
	logger.Log.Infow("Starting studevo backend", "port", cfg.Port)

	// 3. Setup Storage
	ctx := context.Background()
	store, err := repository.Open(ctx, cfg)
	if err != nil {
		logger.Log.Fatalw("Failed to connect to storage", "error", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Log.Warnw("Storage close failed", "error", err)
		}
	}()

	// 4. Optional Redis for login rate limiting
	var limiter goredis.Scripter
	rdb, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Info("Redis not configured - login rate limiting disabled")
	case err != nil:
		logger.Log.Warnw("Redis unavailable - login rate limiting disabled", "error", err)
	default:
		limiter = rdb
		defer rdb.Close()
	}

	// 5. Setup Tokens
	var (
		issuer   domain.TokenIssuer
		verifier middleware.TokenVerifier
	)
	if cfg.JWTSecret != "" {
		tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
		issuer, verifier = tokens, tokens
	} else {
		logger.Log.Warn("JWT_SECRET not set - login will not issue tokens")
	}

	// 6. Setup UseCases
	validate := validation.New()
	authUC := usecase.NewAuthUsecase(store.Accounts, store.Students, store.Organizations, issuer, validate)
	cvUC := usecase.NewCVUsecase(store.Students, validate)
	postUC := usecase.NewPostUsecase(store.Posts, store.Organizations, validate)
	healthUC := usecase.NewHealthUsecase(store)

	// 7. Setup Router
	router := api.NewRouter(api.RouterDeps{
		AuthUC:   authUC,
		CVUC:     cvUC,
		PostUC:   postUC,
		HealthUC: healthUC,
		Tokens:   verifier,
		Limiter:  limiter,
		Config:   cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalw("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
