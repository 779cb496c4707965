package services

import (
	"context"
	"time"

	"github.com/postboard/postboard-backend/logger"
	"github.com/postboard/postboard-backend/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// slowPingThreshold marks a dependency degraded when a ping takes longer.
const slowPingThreshold = 500 * time.Millisecond

type HealthService struct {
	db          Pinger
	redisClient *redis.Client
	version     string
	startTime   time.Time
	log         *zap.SugaredLogger
}

// NewHealthService builds a health checker. redisClient may be nil when the rate limiter
// does not use Redis; the component is then omitted.
func NewHealthService(db Pinger, redisClient *redis.Client, version string) *HealthService {
	return &HealthService{
		db:          db,
		redisClient: redisClient,
		version:     version,
		startTime:   time.Now(),
		log:         logger.GetLogger(),
	}
}

// CheckHealth pings every dependency. The overall status is the worst component status.
func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := map[string]types.HealthComponent{
		"database": h.checkDatabase(ctx),
	}
	if h.redisClient != nil {
		components["redis"] = h.checkRedis(ctx)
	}

	overall := types.HealthStatusUp
	for _, c := range components {
		switch c.Status {
		case types.HealthStatusDown:
			overall = types.HealthStatusDown
		case types.HealthStatusDegraded:
			if overall != types.HealthStatusDown {
				overall = types.HealthStatusDegraded
			}
		}
	}

	return types.HealthCheck{
		Status:     overall,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

// CheckDatabase reports only the database component. Readiness depends on it alone.
func (h *HealthService) CheckDatabase(ctx context.Context) types.HealthComponent {
	return h.checkDatabase(ctx)
}

func (h *HealthService) checkDatabase(ctx context.Context) types.HealthComponent {
	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		h.log.Errorw("Database health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Database connection failed",
		}
	}
	return componentFromLatency(time.Since(start))
}

func (h *HealthService) checkRedis(ctx context.Context) types.HealthComponent {
	start := time.Now()
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.log.Errorw("Redis health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Redis connection failed",
		}
	}
	return componentFromLatency(time.Since(start))
}

func componentFromLatency(latency time.Duration) types.HealthComponent {
	c := types.HealthComponent{Status: types.HealthStatusUp, Latency: latency.String()}
	if latency > slowPingThreshold {
		c.Status = types.HealthStatusDegraded
		c.Details = "Slow response"
	}
	return c
}
