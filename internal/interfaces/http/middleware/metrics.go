package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"vendor-kyc.backend/internal/metrics"
)

// MetricsMiddleware observes request latency per route. The templated route
// path is used so vendor IDs do not explode the label set.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
