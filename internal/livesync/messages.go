// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package livesync

// Wire message types exchanged with an open editor connection. These two are
// the entire protocol: anything else arriving from the peer is ignored.
const (
	// MessageTypeClientID is the first client-to-server message on a new
	// connection, announcing the per-connection client identity.
	MessageTypeClientID = "ClientId"

	// MessageTypeUpdateTime is the server-to-client push telling the editor
	// that another client saved the file and it should reload.
	MessageTypeUpdateTime = "UpdateTime"
)

// InboundMessage is a client-to-server frame.
type InboundMessage struct {
	MessageType string `json:"messageType"`
	ClientID    string `json:"clientId"`
}

// OutboundMessage is a server-to-client frame.
type OutboundMessage struct {
	MessageType    string `json:"messageType"`
	SenderClientID string `json:"senderClientId"`
}
