package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/lecture-post-backend/internal/services/auth"
	"github.com/onegreenvn/lecture-post-backend/internal/services/session"
	"github.com/sirupsen/logrus"
)

// Context keys set by SessionTokenAuthMiddleware
const (
	ContextSessionID = "session_id"
	ContextSession   = "session"
)

// Response headers carrying a refreshed session token
const (
	HeaderSessionToken          = "X-Session-Token"
	HeaderSessionTokenExpiresAt = "X-Session-Token-Expires-At"
)

type SessionTokenMiddleware struct {
	tokens *auth.SessionTokenService
	store  *session.Store
}

func NewSessionTokenMiddleware(tokens *auth.SessionTokenService, store *session.Store) *SessionTokenMiddleware {
	return &SessionTokenMiddleware{tokens: tokens, store: store}
}

// SessionTokenAuthMiddleware validates the session JWT and sets the session in context
func (m *SessionTokenMiddleware) SessionTokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		// EventSource cannot set headers, so the events stream also accepts ?token=
		tokenString := ""
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if c.Request.Method == http.MethodGet {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		tokenInfo, err := m.tokens.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			c.Abort()
			return
		}

		sess, err := m.store.Get(tokenInfo.SessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Session not found or expired"})
			c.Abort()
			return
		}

		if m.tokens.NeedsRefresh(tokenInfo) {
			refreshed, expiresAt, err := m.tokens.Issue(sess.ID)
			if err != nil {
				logrus.Warnf("Failed to refresh session token: %v", err)
			} else {
				c.Header(HeaderSessionToken, refreshed)
				c.Header(HeaderSessionTokenExpiresAt, expiresAt.UTC().Format(time.RFC3339))
			}
		}

		c.Set(ContextSessionID, sess.ID)
		c.Set(ContextSession, sess)
		c.Set("token_info", tokenInfo)

		c.Next()
	}
}
