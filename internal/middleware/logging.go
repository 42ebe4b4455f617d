package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"tenderlink_backend/internal/logger"
)

// LoggingMiddleware logs every completed request with status and timing.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.HTTPLog(
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
