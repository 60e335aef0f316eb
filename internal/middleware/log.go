package middleware

import (
	"time"

	"daily-diet/internal/logging"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one structured line per request after it completes.
// Bodies are never logged; they carry passwords.
func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		}
		if claims, ok := CurrentClaims(c); ok {
			args = append(args, "user_id", claims.UserID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		ctx := c.Request.Context()
		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error(ctx, "request", args...)
		case status >= 400:
			log.Warn(ctx, "request", args...)
		default:
			log.Info(ctx, "request", args...)
		}
	}
}
