package api

import (
	"net/http"

	"github.com/studevo/Studevo/config"
	"github.com/studevo/Studevo/internal/delivery/http/middleware"
	"github.com/studevo/Studevo/internal/delivery/http/response"
	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/internal/usecase"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC   domain.AuthUsecase
	CVUC     domain.CVUsecase
	PostUC   domain.PostUsecase
	HealthUC usecase.HealthUsecase
	// Tokens is nil when no signing secret is configured.
	Tokens middleware.TokenVerifier
	// Limiter is nil when Redis is not configured.
	Limiter goredis.Scripter
	Config  *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	window := deps.Config.RateLimitWindow()
	loginLimit := middleware.RateLimitMiddleware(deps.Limiter,
		middleware.LoginRateLimitConfig(deps.Config.LoginRateLimit, window))
	registerLimit := middleware.RateLimitMiddleware(deps.Limiter,
		middleware.RegisterRateLimitConfig(deps.Config.LoginRateLimit, window))

	NewAuthHandler(api, deps.AuthUC, loginLimit, registerLimit, middleware.AuthMiddleware(deps.Tokens))
	NewCVHandler(api, deps.CVUC)
	NewPostHandler(api, deps.PostUC)
	NewPlaceholderHandler(api)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found")
	})

	return r
}
