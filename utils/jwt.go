package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in every bearer token: the identity plus the session
// token whose row holds the mutable view/language state.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Session  string `json:"session"`
	jwt.RegisteredClaims
}

// GenerateToken signs a JWT for a logged-in user.
func GenerateToken(username, role, session, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Username: username,
		Role:     role,
		Session:  session,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a signed token and returns its claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
