package utils

import (
	"testing"

	"github.com/codeAKstan/NexaVault-sub000/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateJWT("64f000000000000000000001", "user@example.com", PrincipalUser, cfg)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims["sub"])
	assert.Equal(t, "user@example.com", claims["email"])
	assert.Equal(t, PrincipalUser, claims["principal"])
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("64f000000000000000000001", "user@example.com", PrincipalAdmin, testConfig())
	require.NoError(t, err)

	other := &config.Config{JWT: config.JWTConfig{Secret: "different-secret", ExpiresIn: 3600}}
	_, err = ValidateJWT(token, other)
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: -3600}}

	token, err := GenerateJWT("64f000000000000000000001", "user@example.com", PrincipalUser, cfg)
	require.NoError(t, err)

	_, err = ValidateJWT(token, cfg)
	assert.Error(t, err)
}

func TestGenerateReference(t *testing.T) {
	a, err := GenerateReference(16)
	require.NoError(t, err)
	assert.Len(t, a, 16)

	b, err := GenerateReference(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
