package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"billsense/internal/metrics"
)

// Metrics records request counts and latency per matched route.
// Unmatched paths are grouped under "unmatched" to bound label cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
