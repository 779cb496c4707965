package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/postboard/postboard-backend/metrics"
)

// Metrics records request counts and latencies by matched route. Unmatched paths are
// grouped under one label to bound cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		metrics.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
