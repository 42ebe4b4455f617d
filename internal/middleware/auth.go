package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tenderlink_backend/internal/auth"
	"tenderlink_backend/internal/logger"
	"tenderlink_backend/internal/models"
)

const (
	ctxUserIDKey   = "userID"
	ctxUserTypeKey = "userType"
)

// AuthMiddleware validates the bearer token and stores the typed
// authorization context (user id and user type) for downstream handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserTypeKey, models.UserType(claims.UserType))

		// Downstream log lines carry the authenticated user id.
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireUserType restricts a route to one account type. A wrong-type token
// is an authorization failure and surfaces as 401.
func RequireUserType(required models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserType(c) != required {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the context.
func GetUserID(c *gin.Context) string {
	val, exists := c.Get(ctxUserIDKey)
	if !exists {
		return ""
	}
	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserType extracts the authenticated account type from the context.
func GetUserType(c *gin.Context) models.UserType {
	val, exists := c.Get(ctxUserTypeKey)
	if !exists {
		return ""
	}
	ut, ok := val.(models.UserType)
	if !ok {
		return ""
	}
	return ut
}
