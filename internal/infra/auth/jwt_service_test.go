package auth

import (
	"testing"
	"time"

	"crm/config"
	"crm/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	user := entity.User{ID: "user-1", Name: "Hala", Role: entity.RoleGeneralManager}
	loginAt := time.Now().Truncate(time.Second)

	token, err := tokenService.GenerateToken(user, loginAt)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Hala", claims.Name)
	assert.Equal(t, entity.RoleGeneralManager, claims.Role)
	assert.Equal(t, loginAt.UnixMilli(), claims.LoginAt)
	assert.Equal(t, loginAt.Add(time.Hour), claims.ExpiresAt.Time)

	actor := claims.Actor()
	assert.Equal(t, "user-1", actor.UserID)
	assert.Equal(t, entity.RoleGeneralManager, actor.Role)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig("", time.Hour))
	assert.Error(t, err)
}

func TestJWTService_TokenDuration(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig("secret", 0))
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, tokenService.TokenDuration())

	tokenService, err = NewJWTService(newTestJWTConfig("secret", 30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, tokenService.TokenDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "invalid.token.here"},
		{name: "malformed", token: "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tokenService.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-one", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-two", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(entity.User{ID: "user-1"}, time.Now())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig("secret", time.Minute))
	require.NoError(t, err)

	token, err := tokenService.GenerateToken(entity.User{ID: "user-1"}, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = tokenService.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig("secret", time.Hour))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokenService.ValidateToken(token)
	assert.Error(t, err)
}
