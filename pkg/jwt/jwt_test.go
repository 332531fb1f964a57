package jwt

import (
	"testing"
	"time"

	"physiodesk/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	s := testService()

	token, tokenID, err := s.GenerateAccessToken("507f1f77bcf86cd799439011", "pt@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
	assert.Equal(t, "pt@example.com", claims.Email)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestGenerateRefreshTokenType(t *testing.T) {
	s := testService()

	token, _, err := s.GenerateRefreshToken("507f1f77bcf86cd799439011", "pt@example.com")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	s := testService()
	token, _, err := s.GenerateAccessToken("507f1f77bcf86cd799439011", "pt@example.com")
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{
		Secret:        "different-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	s := NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  -time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})

	token, _, err := s.GenerateAccessToken("507f1f77bcf86cd799439011", "pt@example.com")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	s := testService()
	_, err := s.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	s := testService()
	_, firstID, err := s.GenerateAccessToken("507f1f77bcf86cd799439011", "pt@example.com")
	require.NoError(t, err)
	_, secondID, err := s.GenerateAccessToken("507f1f77bcf86cd799439011", "pt@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)
}
