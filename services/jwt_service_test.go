package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateSessionToken("session-1")
	require.NoError(t, err)

	claims, err := svc.VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, sessionIssuer, claims.Issuer)
}

func TestJWTService_Rejects(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)
	other, err := NewJWTService("other-secret", time.Hour)
	require.NoError(t, err)

	foreign, err := other.GenerateSessionToken("session-1")
	require.NoError(t, err)
	_, err = svc.VerifySessionToken(foreign)
	assert.Error(t, err, "wrong key")

	_, err = svc.VerifySessionToken("not-a-token")
	assert.Error(t, err)

	expired, err := NewJWTService("test-secret", time.Minute)
	require.NoError(t, err)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, err := expired.GenerateSessionToken("session-1")
	require.NoError(t, err)
	_, err = svc.VerifySessionToken(old)
	assert.Error(t, err, "expired")
}

func TestNewJWTService_Validation(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.Error(t, err)

	_, err = NewJWTService("secret", 0)
	assert.Error(t, err)

	svc, err := NewJWTService("secret", time.Hour)
	require.NoError(t, err)
	_, err = svc.GenerateSessionToken("")
	assert.Error(t, err)
}
