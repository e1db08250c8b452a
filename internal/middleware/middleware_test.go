package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/lecture-post-backend/internal/services/auth"
	"github.com/onegreenvn/lecture-post-backend/internal/services/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSessionRouter(t *testing.T) (*gin.Engine, *auth.SessionTokenService, *session.Store) {
	t.Helper()
	tokens, err := auth.NewSessionTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	store := session.NewStore(time.Hour)

	r := gin.New()
	r.Use(Logger())
	r.GET("/me", NewSessionTokenMiddleware(tokens, store).SessionTokenAuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextSessionID))
	})
	r.POST("/me", NewSessionTokenMiddleware(tokens, store).SessionTokenAuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextSessionID))
	})
	return r, tokens, store
}

func TestSessionTokenMiddleware(t *testing.T) {
	r, tokens, store := newSessionRouter(t)
	sess := store.Create()
	token, _, err := tokens.Issue(sess.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sess.ID, w.Body.String())

	// query token is accepted for GET only
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me?token="+token, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/me?token="+token, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionTokenMiddlewareRejects(t *testing.T) {
	r, tokens, store := newSessionRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// a valid token for a session that was swept
	sess := store.Create()
	token, _, err := tokens.Issue(sess.ID)
	require.NoError(t, err)
	store.Delete(sess.ID)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session not found")
}

func TestAPIKeyMiddleware(t *testing.T) {
	newRouter := func(key string) *gin.Engine {
		r := gin.New()
		r.GET("/admin", NewAPIKeyMiddleware(key).APIKeyAuthMiddleware(), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return r
	}

	tests := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{"valid", "admin-key", "ApiKey admin-key", http.StatusNoContent},
		{"wrong key", "admin-key", "ApiKey other", http.StatusUnauthorized},
		{"bearer scheme", "admin-key", "Bearer admin-key", http.StatusUnauthorized},
		{"missing header", "admin-key", "", http.StatusUnauthorized},
		{"disabled", "", "ApiKey ", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			newRouter(tt.key).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestLoggedPathRedactsToken(t *testing.T) {
	u, err := url.Parse("/api/v1/sessions/me/events?x=1&token=secret")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/sessions/me/events?token=REDACTED&x=1", loggedPath(u))

	u, err = url.Parse("/api/v1/health")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/health", loggedPath(u))
}

func TestSessionTokenMiddlewareRefreshesAgingToken(t *testing.T) {
	r, tokens, store := newSessionRouter(t)
	now := time.Date(2024, 5, 20, 14, 0, 0, 0, time.UTC)
	tokens.SetClock(func() time.Time { return now })

	sess := store.Create()
	token, expiresAt, err := tokens.Issue(sess.ID)
	require.NoError(t, err)

	get := func(tok string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		r.ServeHTTP(w, req)
		return w
	}

	// fresh token is not reissued
	now = now.Add(20 * time.Minute)
	w := get(token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(HeaderSessionToken))

	// past half of its lifetime the client gets a new one
	now = now.Add(20 * time.Minute)
	w = get(token)
	require.Equal(t, http.StatusOK, w.Code)
	refreshed := w.Header().Get(HeaderSessionToken)
	require.NotEmpty(t, refreshed)
	assert.Equal(t, now.Add(time.Hour).Format(time.RFC3339), w.Header().Get(HeaderSessionTokenExpiresAt))

	// the old token would have expired; the new one still works
	now = expiresAt.Add(time.Minute)
	assert.Equal(t, http.StatusUnauthorized, get(token).Code)
	w = get(refreshed)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sess.ID, w.Body.String())
}
