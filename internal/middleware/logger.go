package middleware

import (
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger returns a middleware that logs failed requests using logrus.
// Session tokens passed as ?token= are redacted.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		if statusCode < 400 || strings.HasSuffix(c.Request.URL.Path, "/health") {
			return
		}

		entry := logrus.WithFields(logrus.Fields{
			"status":    statusCode,
			"latency":   time.Since(start),
			"client_ip": c.ClientIP(),
			"method":    c.Request.Method,
			"path":      loggedPath(c.Request.URL),
		})
		if sessionID := c.GetString(ContextSessionID); sessionID != "" {
			entry = entry.WithField("session_id", sessionID)
		}

		if statusCode >= 500 {
			entry.Error("Server error")
		} else {
			entry.Warn("Client error")
		}
	}
}

func loggedPath(u *url.URL) string {
	if u.RawQuery == "" {
		return u.Path
	}
	query := u.Query()
	if query.Has("token") {
		query.Set("token", "REDACTED")
	}
	return u.Path + "?" + query.Encode()
}
