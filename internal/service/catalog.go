// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package service

import (
	"context"
	"fmt"

	"github.com/cipherhold/cipherhold/internal/crypto"
	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/internal/store"
)

// catalogService implements [CatalogService].
type catalogService struct {
	directories store.DirectoryRepository
	tags        store.TagRepository
	cipher      crypto.Cipher
	logger      *logger.Logger
}

// NewCatalogService constructs a [CatalogService].
func NewCatalogService(directories store.DirectoryRepository, tags store.TagRepository, cipher crypto.Cipher, log *logger.Logger) CatalogService {
	return &catalogService{
		directories: directories,
		tags:        tags,
		cipher:      cipher,
		logger:      log,
	}
}

// CreateDirectory registers a directory. Uniqueness rides on the path hash:
// a concurrent create of the same path loses with [store.ErrNameConflict].
func (s *catalogService) CreateDirectory(ctx context.Context, userID int64, path string) (DirectoryEntry, error) {
	dir, err := s.directories.Create(ctx, userID, crypto.SealField(s.cipher, path))
	if err != nil {
		return DirectoryEntry{}, err
	}

	return DirectoryEntry{
		ID:        dir.ID,
		Path:      path,
		CreatedAt: dir.CreatedAt,
	}, nil
}

// ResolveDirectory looks a directory up by its plaintext path. The lookup
// goes by the deterministic hash, so no stored row is ever decrypted to
// compare paths.
func (s *catalogService) ResolveDirectory(ctx context.Context, userID int64, path string) (DirectoryEntry, error) {
	dir, err := s.directories.GetByPathHash(ctx, userID, s.cipher.Hash(path))
	if err != nil {
		return DirectoryEntry{}, err
	}

	return DirectoryEntry{
		ID:        dir.ID,
		Path:      path,
		CreatedAt: dir.CreatedAt,
	}, nil
}

// ListDirectories returns every directory of the user with paths decrypted.
func (s *catalogService) ListDirectories(ctx context.Context, userID int64) ([]DirectoryEntry, error) {
	dirs, err := s.directories.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]DirectoryEntry, 0, len(dirs))
	for _, dir := range dirs {
		path, err := crypto.OpenField(s.cipher, dir.Path)
		if err != nil {
			return nil, fmt.Errorf("decrypt directory path id=%d: %w", dir.ID, err)
		}

		entries = append(entries, DirectoryEntry{
			ID:        dir.ID,
			Path:      path,
			CreatedAt: dir.CreatedAt,
		})
	}

	return entries, nil
}

// DeleteDirectory removes a directory row.
func (s *catalogService) DeleteDirectory(ctx context.Context, userID, directoryID int64) error {
	return s.directories.Delete(ctx, userID, directoryID)
}

// CreateTag registers a tag.
func (s *catalogService) CreateTag(ctx context.Context, userID int64, name string) (TagEntry, error) {
	tag, err := s.tags.Create(ctx, userID, crypto.SealField(s.cipher, name))
	if err != nil {
		return TagEntry{}, err
	}

	return TagEntry{ID: tag.ID, Name: name}, nil
}

// ListTags returns every tag of the user with names decrypted.
func (s *catalogService) ListTags(ctx context.Context, userID int64) ([]TagEntry, error) {
	tags, err := s.tags.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]TagEntry, 0, len(tags))
	for _, tag := range tags {
		name, err := crypto.OpenField(s.cipher, tag.Name)
		if err != nil {
			return nil, fmt.Errorf("decrypt tag name id=%d: %w", tag.ID, err)
		}

		entries = append(entries, TagEntry{ID: tag.ID, Name: name})
	}

	return entries, nil
}

// AttachTag links a tag to a file.
func (s *catalogService) AttachTag(ctx context.Context, fileID, tagID int64) error {
	return s.tags.Attach(ctx, fileID, tagID)
}

// DetachTag unlinks a tag from a file.
func (s *catalogService) DetachTag(ctx context.Context, fileID, tagID int64) error {
	return s.tags.Detach(ctx, fileID, tagID)
}
