// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package models

import "time"

// SyncMessage is the transient payload published on a file's change channel
// after a successful save. It exists only on the wire: there is no backlog and
// no replay, so a subscriber that joins after the publish never sees it.
//
// SenderClientID identifies the editor connection that triggered the save so
// that the sender's own session can suppress the echo. It is a per-connection
// token, not a security identity.
type SyncMessage struct {
	FileID         int64     `json:"fileId"`
	ModifiedAt     time.Time `json:"modifiedAt"`
	SenderClientID string    `json:"senderClientId"`
}
