package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIKeyMiddleware guards admin routes with a single configured key
type APIKeyMiddleware struct {
	adminKey []byte
}

// NewAPIKeyMiddleware creates a new API key middleware. An empty key disables admin routes.
func NewAPIKeyMiddleware(adminKey string) *APIKeyMiddleware {
	if adminKey == "" {
		logrus.Warn("ADMIN_API_KEY is not set, admin routes are disabled")
	}
	return &APIKeyMiddleware{adminKey: []byte(adminKey)}
}

// APIKeyAuthMiddleware validates the "ApiKey <key>" authorization header
func (m *APIKeyMiddleware) APIKeyAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(m.adminKey) == 0 {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Admin API is disabled",
			})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authorization header is required",
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "ApiKey ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid API key format",
			})
			c.Abort()
			return
		}

		apiKey := strings.TrimPrefix(authHeader, "ApiKey ")
		if subtle.ConstantTimeCompare([]byte(apiKey), m.adminKey) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid API key",
			})
			c.Abort()
			return
		}

		c.Set("auth_type", "api_key")
		c.Set("is_admin", true)

		c.Next()
	}
}
