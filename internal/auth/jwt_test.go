package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-16-chars"

func TestNewTokenService_ShortSecret(t *testing.T) {
	_, err := NewTokenService("short")
	assert.Error(t, err)
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc, err := NewTokenService(testSecret)
	require.NoError(t, err)

	token, err := svc.Generate("user-123", "student")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "student", role)
}

func TestTokenService_Validate_Expired(t *testing.T) {
	svc, err := NewTokenService(testSecret)
	require.NoError(t, err)

	token, err := svc.GenerateWithDuration("user-123", "hr", -time.Minute)
	require.NoError(t, err)

	_, _, err = svc.Validate(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestTokenService_Validate_WrongSecret(t *testing.T) {
	svc, err := NewTokenService(testSecret)
	require.NoError(t, err)

	other, err := NewTokenService("another-secret-16-chars-long")
	require.NoError(t, err)

	token, err := svc.Generate("user-123", "student")
	require.NoError(t, err)

	_, _, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenService_Validate_Garbage(t *testing.T) {
	svc, err := NewTokenService(testSecret)
	require.NoError(t, err)

	_, _, err = svc.Validate("not.a.token")
	assert.Error(t, err)
}
