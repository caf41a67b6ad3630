// internal/server/middleware.go
package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wealthlens-api/internal/common/metrics"
)

// metricsMiddleware records per-route counters and latency. The route
// label uses the registered pattern, not the raw path, so session ids
// and other parameters do not explode the cardinality.
func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		elapsed := time.Since(start)

		metrics.RequestsTotal.WithLabelValues(route, status).Inc()
		metrics.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		if s.obs != nil {
			ctx := c.Request.Context()
			s.obs.RecordRequest(ctx, route, status)
			s.obs.RecordRequestDuration(ctx, route, elapsed)
		}
	}
}
