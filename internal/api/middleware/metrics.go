package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"farmdeck.io/farmdeck/internal/pkg/metrics"
)

// Metrics records request duration per method, route template, and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
