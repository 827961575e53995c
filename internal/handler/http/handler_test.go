// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package http

import (
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cipherhold/cipherhold/internal/channel"
	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/internal/mock"
	"github.com/cipherhold/cipherhold/internal/service"
	"github.com/cipherhold/cipherhold/internal/token"
)

const testUserID int64 = 7

type testEnv struct {
	router  *chi.Mux
	files   *mock.MockFileService
	catalog *mock.MockCatalogService
	channel *channel.MemoryChannel
	bearer  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	files := mock.NewMockFileService(ctrl)
	catalog := mock.NewMockCatalogService(ctrl)
	ch := channel.NewMemoryChannel()

	tokens := token.NewManager("test-secret", time.Hour)
	bearer, err := tokens.Issue(testUserID)
	require.NoError(t, err)

	h := NewHandler(&service.Services{Files: files, Catalog: catalog}, ch, tokens, logger.Nop())

	return &testEnv{
		router:  h.Init(),
		files:   files,
		catalog: catalog,
		channel: ch,
		bearer:  "Bearer " + bearer,
	}
}
