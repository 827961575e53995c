// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package models

import "time"

// Directory is a catalog row describing a folder in a user's tree. The full
// logical path ("/projects/notes") is stored as an [EncryptedField]; sibling
// uniqueness is enforced on the path hash.
type Directory struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Path      EncryptedField `json:"path"`
	CreatedAt time.Time      `json:"created_at"`
}
