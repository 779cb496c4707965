package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/postboard/postboard-backend/config"
	"github.com/postboard/postboard-backend/db"
	"github.com/postboard/postboard-backend/handlers"
	"github.com/postboard/postboard-backend/internal/store/postgres"
	"github.com/postboard/postboard-backend/logger"
	"github.com/postboard/postboard-backend/router"
	"github.com/postboard/postboard-backend/services"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// limiterIdleTimeout is how long an in-memory limiter may sit unused before eviction.
const limiterIdleTimeout = 10 * time.Minute

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Server.AutoMigrate {
		if err := db.RunMigrations(cfg.Database.URL()); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	poolConfig, err := config.NewPoolConfig(&cfg.Database)
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()
	log.Infow("Connected to database", "dsn", logger.MaskConnectionString(cfg.Database.URL()))

	var redisClient *redis.Client
	var limiter services.RateLimiter
	if cfg.RateLimit.Enabled {
		switch cfg.RateLimit.Backend {
		case "redis":
			redisClient = config.NewRedisClient(&cfg.Redis)
			defer redisClient.Close()
			if err := redisClient.Ping(ctx).Err(); err != nil {
				log.Warnw("Redis unreachable at startup, rate limiter will fail open", "error", err)
			}
			limiter = services.NewRateLimitService(redisClient)
		default:
			local := services.NewLocalRateLimitService()
			go local.Run(ctx, limiterIdleTimeout)
			limiter = local
		}
	}

	userService := services.NewUserService(postgres.NewUserStore(pool))
	postService := services.NewPostService(postgres.NewPostStore(pool))
	healthService := services.NewHealthService(pool, redisClient, cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:        cfg,
		UserHandler:   handlers.NewUserHandler(userService),
		PostHandler:   handlers.NewPostHandler(postService),
		HealthHandler: handlers.NewHealthHandler(healthService),
		RateLimiter:   limiter,
		Logger:        log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("Starting server", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	timeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
