// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cipherhold/cipherhold/internal/service"
	"github.com/cipherhold/cipherhold/internal/token"
)

func TestAuthMissingHeader(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

func TestAuthHeaderWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthExpiredToken(t *testing.T) {
	env := newTestEnv(t)

	expired, err := token.NewManager("test-secret", -time.Minute).Issue(testUserID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestAuthForeignSignature(t *testing.T) {
	env := newTestEnv(t)

	forged, err := token.NewManager("other-secret", time.Hour).Issue(testUserID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthResolvesUserID(t *testing.T) {
	env := newTestEnv(t)

	env.catalog.EXPECT().
		ListTags(gomock.Any(), testUserID).
		Return([]service.TagEntry{}, nil)

	rec := env.do(t, http.MethodGet, "/api/tags", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
