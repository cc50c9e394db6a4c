package jwt

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestAccessTokenClaims(t *testing.T) {
	raw, err := GenerateAccessToken(42, testSecret)
	require.NoError(t, err)

	claims, err := Validate(raw, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, TypeAccess, claims.TokenType)
	assert.Equal(t, Issuer, claims.RegisteredClaims.Issuer)
	assert.Equal(t, AccessTokenTTL,
		claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time))
}

func TestRefreshTokenClaims(t *testing.T) {
	raw, err := GenerateRefreshToken(42, testSecret)
	require.NoError(t, err)

	claims, err := Validate(raw, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, TypeRefresh, claims.TokenType)
	assert.NotEmpty(t, claims.TokenID)
	assert.Equal(t, RefreshTokenTTL,
		claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time))
}

func TestRefreshTokensAreDistinct(t *testing.T) {
	first, err := GenerateRefreshToken(7, testSecret)
	require.NoError(t, err)
	second, err := GenerateRefreshToken(7, testSecret)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestValidateExpired(t *testing.T) {
	claims := Claims{
		UserID:    1,
		TokenType: TypeAccess,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-16 * time.Minute)),
			Issuer:    Issuer,
		},
	}
	raw, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Validate(raw, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateTamperedSignature(t *testing.T) {
	raw, err := GenerateAccessToken(1, testSecret)
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = Validate(tampered, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateWrongSecret(t *testing.T) {
	raw, err := GenerateAccessToken(1, testSecret)
	require.NoError(t, err)

	_, err = Validate(raw, "some-other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateGarbage(t *testing.T) {
	_, err := Validate("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
