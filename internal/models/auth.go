package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the JWT claims of a session token
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// SessionTokenInfo represents a validated session token
type SessionTokenInfo struct {
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"포스팅 생성 중 오류가 발생했습니다. 다시 시도해주세요."`
}
