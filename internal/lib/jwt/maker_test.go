package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 15 * time.Minute
	maker := NewMaker(secretKey, tokenTTL)

	tests := []struct {
		name   string
		userID int
		uname  string
		email  string
	}{
		{
			name:   "fixture professional",
			userID: 1,
			uname:  "María González",
			email:  "maria@email.com",
		},
		{
			name:   "registered professional",
			userID: 1756400000000,
			uname:  "Nuevo Profesional",
			email:  "nuevo@email.com",
		},
		{
			name:   "plain ascii name",
			userID: 2,
			uname:  "Carlos Mendoza",
			email:  "carlos@email.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, jti, err := maker.GenerateToken(tt.userID, tt.uname, tt.email)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.NotEmpty(t, jti)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.uname, claims.Name)
			assert.Equal(t, tt.email, claims.Email)
			assert.Equal(t, jti, claims.ID)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestMaker_UniqueJTIPerToken(t *testing.T) {
	maker := NewMaker("test_secret_key", 15*time.Minute)

	_, jti1, err := maker.GenerateToken(1, "María González", "maria@email.com")
	require.NoError(t, err)
	_, jti2, err := maker.GenerateToken(1, "María González", "maria@email.com")
	require.NoError(t, err)

	assert.NotEqual(t, jti1, jti2)
}

func TestMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewMaker(secretKey, 15*time.Minute)

	validToken, _, err := maker.GenerateToken(1, "María González", "maria@email.com")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "invalid.token.here",
		},
		{
			name:  "expired token",
			token: createExpiredToken(t, secretKey),
		},
		{
			name:  "wrong secret key",
			token: createTokenWithWrongSecret(t),
		},
		{
			name:  "tampered token",
			token: validToken + "tampered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func createExpiredToken(t *testing.T, secretKey string) string {
	maker := NewMaker(secretKey, -time.Hour)
	token, _, err := maker.GenerateToken(1, "María González", "maria@email.com")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewMaker("wrong_secret_key", 15*time.Minute)
	token, _, err := wrongMaker.GenerateToken(1, "María González", "maria@email.com")
	require.NoError(t, err)
	return token
}
