// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Issue(42)
	require.NoError(t, err)

	userID, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, err := m.Issue(42)
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	issued, err := NewManager("secret-one", time.Hour).Issue(42)
	require.NoError(t, err)

	_, err = NewManager("secret-two", time.Hour).Parse(issued)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 42}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("test-secret", time.Hour).Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	_, err := NewManager("test-secret", time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
