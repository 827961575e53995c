// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package models

import "time"

// File is a catalog row for a stored document. The display name lives in an
// [EncryptedField]; the content bytes live outside the database under
// StorageKey.
//
// StorageKey is random and opaque: renaming or moving the file changes only
// the Name field, never the at-rest identity. UpdatedAt is bumped on every
// content save and travels in change notifications to live editors.
type File struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"user_id"`
	DirectoryID int64          `json:"directory_id"`
	Name        EncryptedField `json:"name"`
	StorageKey  string         `json:"storage_key"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
