// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

// Package server owns the lifecycle of the inbound HTTP transport: startup,
// signal-driven graceful shutdown, and resource release.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/cipherhold/cipherhold/internal/config"
	"github.com/cipherhold/cipherhold/internal/logger"
)

// Server is the lifecycle contract of the transport server. RunServer blocks
// until shutdown is requested; Shutdown releases resources gracefully.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
