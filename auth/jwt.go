package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// HS256Verifier verifies HMAC-signed tokens against a shared secret.
// Used in development and tests; production deployments verify provider
// ID tokens through OIDCVerifier instead.
type HS256Verifier struct {
	secret []byte
}

func NewHS256Verifier(secret string) (*HS256Verifier, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return &HS256Verifier{secret: []byte(secret)}, nil
}

func (v *HS256Verifier) Verify(_ context.Context, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	email, _ := claims["email"].(string)

	return Identity{UID: sub, Email: email}, nil
}

// MintHS256 signs a short-lived token for the given identity. Intended
// for local development and test fixtures.
func MintHS256(secret, uid, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   uid,
		"email": email,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
