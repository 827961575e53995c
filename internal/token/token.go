// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

// Package token issues and validates the JWT bearer tokens that identify API
// callers. Authorization decisions are not made here: a valid token yields a
// user id, and every catalog query scopes rows to that id.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned by Parse for a structurally valid token
	// whose lifetime has passed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrInvalidToken is returned by Parse for tokens that fail signature or
	// claim validation for any other reason.
	ErrInvalidToken = errors.New("token is invalid")
)

// Claims is the JWT payload carried by every issued token.
type Claims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager constructs a [Manager]. ttl bounds the lifetime of issued
// tokens.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token for userID.
func (m *Manager) Issue(userID int64) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Parse validates tokenString and returns the user id it carries. Only HS256
// signatures under the manager's secret are accepted.
func (m *Manager) Parse(tokenString string) (int64, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !parsed.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
