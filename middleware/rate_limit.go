package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/postboard/postboard-backend/errors"
	"github.com/postboard/postboard-backend/logger"
	"github.com/postboard/postboard-backend/metrics"
	"github.com/postboard/postboard-backend/services"
)

const rateLimitedMessage = "Too many requests. Please try again later."

// RateLimiter limits requests per client IP to requests per window. Backend failures are
// logged and the request is allowed through.
func RateLimiter(limiter services.RateLimiter, requests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		allowed, retryAfter, err := limiter.CheckLimit(c.Request.Context(), key, requests, window)
		if err != nil {
			metrics.RateLimiterFailures.Inc()
			logger.GetLogger().Warnw("Rate limit check failed, allowing request",
				"key", key,
				"error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(requests))
		if !allowed {
			metrics.RateLimited.Inc()
			seconds := int(retryAfter.Round(time.Second).Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apperrors.ErrorResponse{
				Success: false,
				Message: rateLimitedMessage,
			})
			return
		}

		c.Next()
	}
}
