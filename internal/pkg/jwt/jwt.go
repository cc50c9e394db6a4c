package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Token kinds carried in the token_type claim.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Issuer is the fixed iss claim on every token.
const Issuer = "https://www.Final-Labz.com"

// Token lifetimes. Revocation is only via expiry; there is no
// persisted token table.
const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 14 * 24 * time.Hour
)

// Claims represents the signed claim set for both token kinds.
type Claims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	TokenID   string `json:"token_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateAccessToken mints a short-lived access token for a user.
func GenerateAccessToken(userID uint, secret string) (string, error) {
	return generate(userID, TypeAccess, AccessTokenTTL, "", secret)
}

// GenerateRefreshToken mints a long-lived refresh token. Each token
// carries a unique id so rotation always produces a distinct value,
// even within the same second.
func GenerateRefreshToken(userID uint, secret string) (string, error) {
	return generate(userID, TypeRefresh, RefreshTokenTTL, uuid.New().String(), secret)
}

func generate(userID uint, tokenType string, ttl time.Duration, tokenID, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		TokenID:   tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Validate checks signature and expiry and returns the claim set.
// Expired tokens fail with ErrTokenExpired; every other decode
// failure is ErrTokenInvalid.
func Validate(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
