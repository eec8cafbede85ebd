package middleware

import (
	"strconv"
	"time"

	"diagramadoria/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware собирает счётчики и гистограммы HTTP запросов.
// Путь берётся из шаблона маршрута, чтобы не раздувать кардинальность метрик.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
