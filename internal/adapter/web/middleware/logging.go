package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"todoweb/internal/metrics"
)

// RequestLogger logs every request through otelzap (so lines carry trace
// ids) and feeds the request metrics.
func RequestLogger(logger *otelzap.Logger, appMetrics *metrics.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if appMetrics != nil {
			routePath := c.FullPath()

			if routePath == "" {
				routePath = path
			}

			appMetrics.RecordRequest(c.Request.Method, routePath, strconv.Itoa(status), latency)
		}

		if raw != "" {
			path = path + "?" + raw
		}

		logger.Ctx(c.Request.Context()).Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}
