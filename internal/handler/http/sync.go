// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package http

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/cipherhold/cipherhold/internal/livesync"
	"github.com/cipherhold/cipherhold/internal/logger"
)

// sync upgrades the request to a websocket and binds a live-sync session to
// the file's change channel. The handler then becomes the connection's read
// loop: it returns only when the peer disconnects, and the session is closed
// on every exit path.
func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	fileID, err := idParam(r, "fileID")
	if err != nil {
		http.Error(w, "invalid file id", http.StatusBadRequest)
		return
	}

	// Ownership check before the upgrade: a foreign or missing file must fail
	// with a plain HTTP status, not a dangling websocket.
	if _, err := h.services.Files.Get(r.Context(), userID, fileID); err != nil {
		writeError(w, r, "*Handler.sync", err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written its own error response.
		log.Err(err).Str("func", "*Handler.sync").Int64("file_id", fileID).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	session, err := livesync.NewSession(r.Context(), fileID, newWSPeer(conn), h.channel, log)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").Int64("file_id", fileID).Msg("failed to start sync session")
		return
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				session.Close(err)
			} else {
				session.Close(nil)
			}
			return
		}

		session.HandleInbound(raw)
	}
}

// wsPeer adapts a gorilla websocket connection to [livesync.Peer]. Gorilla
// permits one concurrent writer per connection, and channel callbacks arrive
// on their own goroutines, so every write goes through one mutex.
type wsPeer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newWSPeer(conn *websocket.Conn) *wsPeer {
	return &wsPeer{conn: conn}
}

// Send implements [livesync.Peer].
func (p *wsPeer) Send(msg livesync.OutboundMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.WriteJSON(msg)
}
