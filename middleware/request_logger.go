package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hwangtab/artcontract/pkg/logger"
)

// RequestLogger writes one access-log line per request. It reads
// c.Request after the handlers ran, so the session id a handler stamped
// via WithSessionID shows up on the line along with the request id and
// tenant from the earlier middlewares.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		attrs := []any{
			"status", status,
			"method", c.Request.Method,
			"path", path,
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if query != "" {
			attrs = append(attrs, "query", query)
		}

		log := logger.WithContext(c.Request.Context())
		switch {
		case status >= 500:
			log.Error("request completed", attrs...)
		case status >= 400:
			log.Warn("request completed", attrs...)
		default:
			log.Info("request completed", attrs...)
		}
	}
}
