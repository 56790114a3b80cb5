package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionIssuer = "city-storefront"

// SessionClaims is the payload of the storefront session cookie.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies session tokens.
type JWTService struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWTService builds a JWTService. Tokens expire after ttl.
func NewJWTService(secretKey string, ttl time.Duration) (*JWTService, error) {
	if secretKey == "" {
		return nil, errors.New("JWT secret key cannot be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("session TTL must be positive")
	}
	return &JWTService{secretKey: secretKey, ttl: ttl, now: time.Now}, nil
}

// TTL is how long an issued token stays valid.
func (j *JWTService) TTL() time.Duration {
	return j.ttl
}

// GenerateSessionToken creates a token binding the caller to sessionID.
func (j *JWTService) GenerateSessionToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("sessionID cannot be empty")
	}

	now := j.now()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    sessionIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifySessionToken parses tokenString and returns its claims if the token is
// valid, unexpired and carries a session id.
func (j *JWTService) VerifySessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.SessionID == "" {
		return nil, errors.New("token missing session id")
	}

	return claims, nil
}
