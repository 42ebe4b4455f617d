package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tenderlink_backend/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns each request an id, propagating a caller-
// supplied one when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header(RequestIDHeader, requestID)

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
