// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/cipherhold/cipherhold/internal/config"
	"github.com/cipherhold/cipherhold/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, log *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:        cfg.HTTPAddress,
			Handler:     handler,
			IdleTimeout: cfg.RequestTimeout,
		},
		logger: log,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
