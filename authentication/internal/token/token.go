// Package token issues and verifies the signed tokens handed out by the
// authentication service.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid is returned for a token that is malformed, expired or not
// signed with the service secret.
var ErrInvalid = errors.New("invalid token")

// SecretProvider returns the HMAC signing secret.
type SecretProvider func() []byte

// Manager signs tokens with HS256.
type Manager struct {
	secretProvider SecretProvider
	ttl            time.Duration
	now            func() time.Time
}

// New creates a token manager. Tokens expire ttl after issuance.
func New(secretProvider SecretProvider, ttl time.Duration) *Manager {
	return &Manager{secretProvider: secretProvider, ttl: ttl, now: time.Now}
}

// Issue returns a token identifying pseudo.
func (m *Manager) Issue(pseudo string) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   pseudo,
		Issuer:    "catflix",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})
	signed, err := token.SignedString(m.secretProvider())
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the pseudo a valid token identifies.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretProvider(), nil
		},
		jwt.WithIssuer("catflix"),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalid
	}
	if claims.Subject == "" {
		return "", ErrInvalid
	}
	return claims.Subject, nil
}
