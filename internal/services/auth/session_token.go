package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/sirupsen/logrus"
)

const tokenIssuer = "lecture-post-backend"

// SessionTokenService issues and validates the bearer tokens that identify form sessions
type SessionTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionTokenService creates a token service. An empty secret is replaced by a
// random one, which invalidates all tokens on restart.
func NewSessionTokenService(secret string, ttl time.Duration) (*SessionTokenService, error) {
	key := []byte(secret)
	if len(key) == 0 {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		key = []byte(hex.EncodeToString(buf))
		logrus.Warn("SESSION_SECRET is not set, using a random secret; tokens will not survive a restart")
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	logrus.Infof("Session token TTL: %v", ttl)

	return &SessionTokenService{
		secret: key,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// SetClock replaces the time source. Call it before the service is shared.
func (s *SessionTokenService) SetClock(now func() time.Time) {
	s.now = now
}

// NeedsRefresh reports whether a token has used up half of its lifetime.
// Sessions expire after inactivity, so active clients are handed a fresh token.
func (s *SessionTokenService) NeedsRefresh(info *models.SessionTokenInfo) bool {
	return info.ExpiresAt.Sub(s.now()) < s.ttl/2
}

// Issue signs a token for sessionID
func (s *SessionTokenService) Issue(sessionID string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &models.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses a token and returns the session it identifies
func (s *SessionTokenService) Validate(tokenString string) (*models.SessionTokenInfo, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(*models.SessionClaims); ok && token.Valid {
		if claims.SessionID == "" {
			return nil, errors.New("token has no session")
		}
		return &models.SessionTokenInfo{
			SessionID: claims.SessionID,
			ExpiresAt: claims.ExpiresAt.Time,
		}, nil
	}

	return nil, errors.New("invalid token claims")
}
