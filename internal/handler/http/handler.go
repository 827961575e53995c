// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

// Package http implements the HTTP transport layer of the application:
// middleware, REST route handlers and the websocket sync endpoint.
// Authentication, logging and tracing are handled here before requests reach
// the service layer; a valid bearer token resolves to a user id and every
// downstream query is scoped to it.
package http

import (
	"github.com/gorilla/websocket"

	"github.com/cipherhold/cipherhold/internal/channel"
	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/internal/service"
	"github.com/cipherhold/cipherhold/internal/token"
)

type Handler struct {
	services *service.Services
	channel  channel.Channel
	tokens   *token.Manager
	upgrader websocket.Upgrader

	logger *logger.Logger
}

func NewHandler(services *service.Services, ch channel.Channel, tokens *token.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		channel:  ch,
		tokens:   tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger,
	}
}
