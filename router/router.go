package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/postboard/postboard-backend/config"
	_ "github.com/postboard/postboard-backend/docs"
	apperrors "github.com/postboard/postboard-backend/errors"
	"github.com/postboard/postboard-backend/handlers"
	"github.com/postboard/postboard-backend/middleware"
	"github.com/postboard/postboard-backend/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config        *config.Config
	UserHandler   *handlers.UserHandler
	PostHandler   *handlers.PostHandler
	HealthHandler *handlers.HealthHandler
	// RateLimiter guards the resource routes. Nil disables rate limiting.
	RateLimiter services.RateLimiter
	Logger      *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if err := r.SetTrustedProxies(deps.Config.Server.TrustedProxies); err != nil && deps.Logger != nil {
		deps.Logger.Warnw("Invalid trusted proxies, trusting none", "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeadersMiddleware(&deps.Config.Server))
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.ErrorHandler())

	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var guards []gin.HandlerFunc
	rl := deps.Config.RateLimit
	if deps.RateLimiter != nil && rl.Enabled {
		window := time.Duration(rl.WindowSeconds) * time.Second
		guards = append(guards, middleware.RateLimiter(deps.RateLimiter, rl.RequestsPerMinute, window))
	}

	// The same resource routes are served at the root and under /api.
	registerResourceRoutes(r.Group("", guards...), deps)
	registerResourceRoutes(r.Group("/api", guards...), deps)

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound("Route"))
	})

	return r
}

func registerResourceRoutes(g *gin.RouterGroup, deps Dependencies) {
	userRoutes := g.Group("/users")
	{
		userRoutes.GET("", deps.UserHandler.ListUsers)
		userRoutes.POST("", deps.UserHandler.CreateUser)
		userRoutes.GET("/:id", deps.UserHandler.GetUser)
		userRoutes.PUT("/:id", deps.UserHandler.UpdateUser)
		userRoutes.DELETE("/:id", deps.UserHandler.DeleteUser)
	}

	postRoutes := g.Group("/posts")
	{
		postRoutes.GET("", deps.PostHandler.ListPosts)
		postRoutes.POST("", deps.PostHandler.CreatePost)
		postRoutes.GET("/:id", deps.PostHandler.GetPost)
		postRoutes.PUT("/:id", deps.PostHandler.UpdatePost)
		postRoutes.DELETE("/:id", deps.PostHandler.DeletePost)
	}
}
