// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/cipherhold/cipherhold/internal/blob"
	"github.com/cipherhold/cipherhold/internal/channel"
	"github.com/cipherhold/cipherhold/internal/crypto"
	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/internal/store"
	"github.com/cipherhold/cipherhold/models"
)

// fileService implements [FileService].
type fileService struct {
	files   store.FileRepository
	blobs   BlobStore
	channel channel.Channel
	cipher  crypto.Cipher
	logger  *logger.Logger
}

// NewFileService constructs a [FileService].
func NewFileService(files store.FileRepository, blobs BlobStore, ch channel.Channel, cipher crypto.Cipher, log *logger.Logger) FileService {
	return &fileService{
		files:   files,
		blobs:   blobs,
		channel: ch,
		cipher:  cipher,
		logger:  log,
	}
}

// Create registers a file row with a fresh random storage key. No blob exists
// until the first content save. The unique index on the name hash makes the
// sibling-conflict check race-free: a concurrent create of the same name loses
// with [store.ErrNameConflict].
func (s *fileService) Create(ctx context.Context, userID, directoryID int64, name string) (FileEntry, error) {
	file := models.File{
		UserID:      userID,
		DirectoryID: directoryID,
		Name:        crypto.SealField(s.cipher, name),
		StorageKey:  uuid.NewString(),
	}

	if err := s.files.Create(ctx, &file); err != nil {
		return FileEntry{}, err
	}

	return FileEntry{
		ID:          file.ID,
		DirectoryID: file.DirectoryID,
		Name:        name,
		CreatedAt:   file.CreatedAt,
		UpdatedAt:   file.UpdatedAt,
	}, nil
}

// Get returns one file with its name decrypted.
func (s *fileService) Get(ctx context.Context, userID, fileID int64) (FileEntry, error) {
	file, err := s.files.GetByID(ctx, userID, fileID)
	if err != nil {
		return FileEntry{}, err
	}

	name, err := crypto.OpenField(s.cipher, file.Name)
	if err != nil {
		return FileEntry{}, fmt.Errorf("decrypt file name id=%d: %w", file.ID, err)
	}

	return FileEntry{
		ID:          file.ID,
		DirectoryID: file.DirectoryID,
		Name:        name,
		CreatedAt:   file.CreatedAt,
		UpdatedAt:   file.UpdatedAt,
	}, nil
}

// Rename replaces the display name of a file. Both halves of the stored pair
// are recomputed from the new plaintext; the storage key and the blob under it
// are untouched.
func (s *fileService) Rename(ctx context.Context, userID, fileID int64, newName string) error {
	return s.files.Rename(ctx, userID, fileID, crypto.SealField(s.cipher, newName))
}

// List returns the files of one directory with their names decrypted,
// optionally narrowed to files carrying all of the given tags.
func (s *fileService) List(ctx context.Context, userID, directoryID int64, tagIDs []int64) ([]FileEntry, error) {
	files, err := s.files.ListByDirectory(ctx, userID, directoryID, tagIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]FileEntry, 0, len(files))
	for _, file := range files {
		name, err := crypto.OpenField(s.cipher, file.Name)
		if err != nil {
			return nil, fmt.Errorf("decrypt file name id=%d: %w", file.ID, err)
		}

		entries = append(entries, FileEntry{
			ID:          file.ID,
			DirectoryID: file.DirectoryID,
			Name:        name,
			CreatedAt:   file.CreatedAt,
			UpdatedAt:   file.UpdatedAt,
		})
	}

	return entries, nil
}

// Delete removes a file's blob and then its catalog row. A missing blob is
// tolerated: a file created but never saved has no content yet.
func (s *fileService) Delete(ctx context.Context, userID, fileID int64) error {
	log := logger.FromContext(ctx)

	file, err := s.files.GetByID(ctx, userID, fileID)
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, file.StorageKey); err != nil && !errors.Is(err, blob.ErrBlobNotFound) {
		log.Err(err).
			Str("func", "fileService.Delete").
			Int64("file_id", fileID).
			Msg("failed to delete file content")
		return err
	}

	return s.files.Delete(ctx, userID, fileID)
}

// SaveContent encrypts and persists new content for a file, bumps the
// catalog's modification timestamp and publishes a change notification
// carrying senderClientID so the saving editor's own session can suppress the
// echo.
//
// The notification is fire-and-forget: a publish failure is logged but the
// save still succeeds — live sync degrades, durability does not.
func (s *fileService) SaveContent(ctx context.Context, userID, fileID int64, content io.Reader, senderClientID string) (SaveResult, error) {
	log := logger.FromContext(ctx)

	file, err := s.files.GetByID(ctx, userID, fileID)
	if err != nil {
		return SaveResult{}, err
	}

	n, err := s.blobs.Save(ctx, file.StorageKey, content)
	if err != nil {
		return SaveResult{}, err
	}

	modifiedAt := time.Now().UTC()
	if err := s.files.TouchUpdatedAt(ctx, fileID, modifiedAt); err != nil {
		return SaveResult{}, err
	}

	msg := models.SyncMessage{
		FileID:         fileID,
		ModifiedAt:     modifiedAt,
		SenderClientID: senderClientID,
	}
	if pubErr := s.channel.Publish(ctx, fileID, msg); pubErr != nil {
		log.Warn().
			Err(pubErr).
			Str("func", "fileService.SaveContent").
			Int64("file_id", fileID).
			Msg("failed to publish change notification")
	}

	return SaveResult{Size: n, ModifiedAt: modifiedAt}, nil
}

// LoadContent opens a decrypting reader over the file's current content. The
// caller must close it; the content read lock is held until then.
func (s *fileService) LoadContent(ctx context.Context, userID, fileID int64) (io.ReadCloser, error) {
	file, err := s.files.GetByID(ctx, userID, fileID)
	if err != nil {
		return nil, err
	}

	return s.blobs.Load(ctx, file.StorageKey)
}

// ContentSize returns the plaintext length of the file's content. A file that
// was created but never saved reports zero.
func (s *fileService) ContentSize(ctx context.Context, userID, fileID int64) (int64, error) {
	file, err := s.files.GetByID(ctx, userID, fileID)
	if err != nil {
		return 0, err
	}

	size, err := s.blobs.Size(ctx, file.StorageKey)
	if errors.Is(err, blob.ErrBlobNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return size, nil
}
