// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

// Package livesync binds one live editor connection to the change channel of
// one file. Each connection gets a Session: a small state machine that
// records the peer's per-connection client identity, forwards "someone else
// saved" notifications, and suppresses the echo of the peer's own saves.
//
// There is no reconnection or resume logic. A dropped connection is terminal;
// the editor reconnects, performs the handshake again, and never receives
// notifications published during the gap.
package livesync

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cipherhold/cipherhold/internal/channel"
	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/models"
)

// State is the lifecycle position of a [Session].
type State int

const (
	// StateConnecting covers construction up to the channel subscription.
	StateConnecting State = iota

	// StateAwaitingClientID means the subscription is live but the peer has
	// not yet announced its client identity.
	StateAwaitingClientID

	// StateActive means the client identity is known and echo suppression
	// is in effect.
	StateActive

	// StateClosed is terminal: the subscription is gone and no further
	// frames are forwarded.
	StateClosed
)

// String implements [fmt.Stringer] for log fields.
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateAwaitingClientID:
		return "awaiting_client_id"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Peer is the transport half of an editor connection. The websocket adapter
// in the HTTP layer implements it; tests substitute fakes.
type Peer interface {
	// Send pushes one frame to the editor. An error means the transport is
	// no longer usable.
	Send(msg OutboundMessage) error
}

// Session is the per-connection protocol state machine. All state transitions
// happen under one mutex; channel callbacks arrive on their own goroutines.
type Session struct {
	fileID int64
	peer   Peer
	logger *logger.Logger

	mu       sync.Mutex
	state    State
	clientID string
	sub      *channel.Subscription
}

// NewSession creates a session for one editor connection to fileID and
// subscribes it to the file's change channel immediately, before the client
// has announced its identity — a notification published right after connect
// must not be missed.
func NewSession(ctx context.Context, fileID int64, peer Peer, ch channel.Channel, log *logger.Logger) (*Session, error) {
	s := &Session{
		fileID: fileID,
		peer:   peer,
		logger: log,
		state:  StateConnecting,
	}

	sub, err := ch.Subscribe(ctx, fileID, s.onNotification)
	if err != nil {
		s.state = StateClosed
		return nil, fmt.Errorf("subscribe to change channel: %w", err)
	}

	s.mu.Lock()
	s.sub = sub
	s.state = StateAwaitingClientID
	s.mu.Unlock()

	return s, nil
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// HandleInbound processes one raw frame from the peer. Malformed frames and
// unknown message types are ignored with a warning; the connection stays
// open. The only meaningful inbound frame is the ClientId announcement.
func (s *Session) HandleInbound(raw []byte) {
	var msg InboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "Session.HandleInbound").
			Int64("file_id", s.fileID).
			Msg("ignoring malformed frame")
		return
	}

	switch msg.MessageType {
	case MessageTypeClientID:
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.state != StateAwaitingClientID {
			return
		}

		s.clientID = msg.ClientID
		s.state = StateActive
		s.logger.Debug().
			Str("func", "Session.HandleInbound").
			Int64("file_id", s.fileID).
			Str("client_id", msg.ClientID).
			Msg("session active")
	default:
		s.logger.Warn().
			Str("func", "Session.HandleInbound").
			Int64("file_id", s.fileID).
			Str("message_type", msg.MessageType).
			Msg("ignoring unknown message type")
	}
}

// onNotification is the change-channel callback. The sender's own session
// discards the message (echo suppression); every other live session forwards
// an UpdateTime frame to its editor.
func (s *Session) onNotification(msg models.SyncMessage) {
	s.mu.Lock()

	if s.state == StateClosed || s.state == StateConnecting {
		s.mu.Unlock()
		return
	}

	if s.clientID != "" && msg.SenderClientID == s.clientID {
		s.mu.Unlock()
		return
	}

	peer := s.peer
	s.mu.Unlock()

	err := peer.Send(OutboundMessage{
		MessageType:    MessageTypeUpdateTime,
		SenderClientID: msg.SenderClientID,
	})
	if err != nil {
		// transport already gone; treat like an abrupt peer disconnect
		s.logger.Warn().
			Err(err).
			Str("func", "Session.onNotification").
			Int64("file_id", s.fileID).
			Msg("push failed, closing session")
		s.Close(err)
	}
}

// Close moves the session to its terminal state and cancels the channel
// subscription. cause is nil for a clean peer-initiated close and non-nil for
// an abrupt one; the distinction matters only for logging — dropped
// connections are normal and are never escalated. Safe to call repeatedly.
func (s *Session) Close(cause error) {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}

	s.state = StateClosed
	sub := s.sub
	clientID := s.clientID
	s.mu.Unlock()

	if sub != nil {
		sub.Close()
	}

	if cause != nil {
		s.logger.Warn().
			Err(cause).
			Str("func", "Session.Close").
			Int64("file_id", s.fileID).
			Str("client_id", clientID).
			Msg("session closed abruptly")
		return
	}

	s.logger.Info().
		Str("func", "Session.Close").
		Int64("file_id", s.fileID).
		Str("client_id", clientID).
		Msg("session closed")
}
