package middleware

import (
	"time"

	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(string(domain.KeyRequestID)),
		}
		switch {
		case status >= 500:
			logger.Log.Errorw("request", fields...)
		case status >= 400:
			logger.Log.Warnw("request", fields...)
		default:
			logger.Log.Infow("request", fields...)
		}
	}
}
