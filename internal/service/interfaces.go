// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

// Package service holds the application services between the HTTP handlers
// and the storage layers. Services speak plaintext names to callers and
// EncryptedField pairs to the catalog; nothing above this package ever sees a
// ciphertext column.
package service

import (
	"context"
	"io"
	"time"

	"github.com/cipherhold/cipherhold/internal/channel"
	"github.com/cipherhold/cipherhold/internal/crypto"
	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/internal/store"
)

// BlobStore is the content storage surface the file service depends on,
// satisfied by [github.com/cipherhold/cipherhold/internal/blob.Store].
type BlobStore interface {
	Save(ctx context.Context, storageKey string, r io.Reader) (int64, error)
	Load(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
	Size(ctx context.Context, storageKey string) (int64, error)
}

// FileEntry is a catalog file with its name decrypted for presentation.
type FileEntry struct {
	ID          int64     `json:"id"`
	DirectoryID int64     `json:"directoryId"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DirectoryEntry is a catalog directory with its path decrypted.
type DirectoryEntry struct {
	ID        int64     `json:"id"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"createdAt"`
}

// TagEntry is a catalog tag with its name decrypted.
type TagEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SaveResult reports the outcome of a content save: the plaintext size that
// was written and the modification instant recorded in the catalog. The same
// instant travels in the change notification.
type SaveResult struct {
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// FileService manages files: catalog rows, encrypted content and the change
// notifications that keep live editors in sync.
type FileService interface {
	Create(ctx context.Context, userID, directoryID int64, name string) (FileEntry, error)
	Get(ctx context.Context, userID, fileID int64) (FileEntry, error)
	Rename(ctx context.Context, userID, fileID int64, newName string) error
	List(ctx context.Context, userID, directoryID int64, tagIDs []int64) ([]FileEntry, error)
	Delete(ctx context.Context, userID, fileID int64) error

	SaveContent(ctx context.Context, userID, fileID int64, content io.Reader, senderClientID string) (SaveResult, error)
	LoadContent(ctx context.Context, userID, fileID int64) (io.ReadCloser, error)
	ContentSize(ctx context.Context, userID, fileID int64) (int64, error)
}

// CatalogService manages directories and tags.
type CatalogService interface {
	CreateDirectory(ctx context.Context, userID int64, path string) (DirectoryEntry, error)
	ResolveDirectory(ctx context.Context, userID int64, path string) (DirectoryEntry, error)
	ListDirectories(ctx context.Context, userID int64) ([]DirectoryEntry, error)
	DeleteDirectory(ctx context.Context, userID, directoryID int64) error

	CreateTag(ctx context.Context, userID int64, name string) (TagEntry, error)
	ListTags(ctx context.Context, userID int64) ([]TagEntry, error)
	AttachTag(ctx context.Context, fileID, tagID int64) error
	DetachTag(ctx context.Context, fileID, tagID int64) error
}

// Services aggregates every application service.
type Services struct {
	Files   FileService
	Catalog CatalogService
}

// NewServices wires the services over the shared repositories, blob store,
// change channel and cipher.
func NewServices(repos *store.Repositories, blobs BlobStore, ch channel.Channel, cipher crypto.Cipher, log *logger.Logger) *Services {
	return &Services{
		Files:   NewFileService(repos.Files, blobs, ch, cipher, log),
		Catalog: NewCatalogService(repos.Directories, repos.Tags, cipher, log),
	}
}
