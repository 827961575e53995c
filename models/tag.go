// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package models

// Tag is a catalog row for a user-defined label. Tag names are unique per
// user on the name hash.
type Tag struct {
	ID     int64          `json:"id"`
	UserID int64          `json:"user_id"`
	Name   EncryptedField `json:"name"`
}
