// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package store

import (
	"context"
	"time"

	"github.com/cipherhold/cipherhold/internal/blob"
	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/models"
)

// DirectoryRepository manages folder rows. Path fields are EncryptedField
// pairs; all lookups go by path hash.
type DirectoryRepository interface {
	Create(ctx context.Context, userID int64, path models.EncryptedField) (models.Directory, error)
	GetByPathHash(ctx context.Context, userID int64, pathHash string) (models.Directory, error)
	List(ctx context.Context, userID int64) ([]models.Directory, error)
	Delete(ctx context.Context, userID, directoryID int64) error
}

// FileRepository manages file rows. Name fields are EncryptedField pairs;
// sibling uniqueness lives on (directory_id, name_hash). The storage key of a
// row never changes: renames touch only the name pair.
type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, userID, fileID int64) (models.File, error)
	GetByNameHash(ctx context.Context, directoryID int64, nameHash string) (models.File, error)
	ListByDirectory(ctx context.Context, userID, directoryID int64, tagIDs []int64) ([]models.File, error)
	Rename(ctx context.Context, userID, fileID int64, name models.EncryptedField) error
	TouchUpdatedAt(ctx context.Context, fileID int64, modifiedAt time.Time) error
	Delete(ctx context.Context, userID, fileID int64) error
}

// TagRepository manages tag rows and their attachments to files.
type TagRepository interface {
	Create(ctx context.Context, userID int64, name models.EncryptedField) (models.Tag, error)
	List(ctx context.Context, userID int64) ([]models.Tag, error)
	Attach(ctx context.Context, fileID, tagID int64) error
	Detach(ctx context.Context, fileID, tagID int64) error
}

// Repositories aggregates every catalog repository plus the size-hint cache
// that rides in the same database.
type Repositories struct {
	Directories DirectoryRepository
	Files       FileRepository
	Tags        TagRepository
	SizeHints   blob.SizeHintStore
}

// NewRepositories wires all repositories over one catalog connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Directories: NewDirectoryRepository(db, log),
		Files:       NewFileRepository(db, log),
		Tags:        NewTagRepository(db, log),
		SizeHints:   NewSizeHintRepository(db, log),
	}
}
