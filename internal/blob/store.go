// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

// Package blob stores encrypted-at-rest content blobs identified by opaque
// storage keys. Every read, write and delete runs under the matching mode of
// a distributed reader/writer lock, so concurrent operations on the same key
// across process replicas never observe a partially written blob.
//
// A derived size cache rides alongside: plaintext lengths are expensive to
// recompute (a full decrypt pass) and requested far more often than content
// is written, so the store keeps a best-effort hint that is invalidated —
// deleted, not recomputed — on every mutation.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cipherhold/cipherhold/internal/crypto"
	"github.com/cipherhold/cipherhold/internal/lock"
	"github.com/cipherhold/cipherhold/internal/logger"
)

// Lock and cache key prefixes. One namespace per storage key; nothing else in
// the system may reuse these prefixes.
const (
	lockKeyPrefix = "FileLock:"
	sizeKeyPrefix = "FileSize:"
)

// Store persists encrypted blobs in a directory, one file per storage key.
type Store struct {
	dir         string
	cipher      crypto.Cipher
	locker      lock.Locker
	hints       SizeHintStore
	lockTimeout time.Duration
	logger      *logger.Logger
}

// NewStore constructs a [Store] rooted at dir, creating the directory if
// needed. lockTimeout bounds every lock acquisition; a non-positive value
// falls back to [lock.DefaultTimeout].
func NewStore(dir string, cipher crypto.Cipher, locker lock.Locker, hints SizeHintStore, lockTimeout time.Duration, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}

	if lockTimeout <= 0 {
		lockTimeout = lock.DefaultTimeout
	}

	return &Store{
		dir:         dir,
		cipher:      cipher,
		locker:      locker,
		hints:       hints,
		lockTimeout: lockTimeout,
		logger:      log,
	}, nil
}

// LockName returns the distributed-lock name guarding the given storage key.
func LockName(storageKey string) string {
	return lockKeyPrefix + storageKey
}

// SizeHintKey returns the size-cache key for the given storage key.
func SizeHintKey(storageKey string) string {
	return sizeKeyPrefix + storageKey
}

func (s *Store) path(storageKey string) (string, error) {
	if storageKey == "" || strings.ContainsAny(storageKey, `/\`) || strings.Contains(storageKey, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidStorageKey, storageKey)
	}
	return filepath.Join(s.dir, storageKey), nil
}

// Save encrypts the content read from r and persists it under storageKey,
// replacing any previous blob atomically. It holds the key's write lock for
// the whole encrypt-and-persist pass, so readers either see the previous blob
// or the complete new one. Returns the number of plaintext bytes written.
//
// Returns [ErrLockTimeout] when the write lock is contended past the
// configured timeout; nothing has been mutated in that case.
func (s *Store) Save(ctx context.Context, storageKey string, r io.Reader) (int64, error) {
	path, err := s.path(storageKey)
	if err != nil {
		return 0, err
	}

	handle, err := s.locker.AcquireWrite(ctx, LockName(storageKey), s.lockTimeout)
	if err != nil {
		return 0, fmt.Errorf("acquire write lock: %w", err)
	}
	if handle == nil {
		return 0, ErrLockTimeout
	}
	defer handle.Release(ctx)

	n, err := s.writeEncrypted(path, r)
	if err != nil {
		return 0, err
	}

	// Best-effort hint refresh. If the new value cannot be recorded the old
	// entry must not survive either.
	if hintErr := s.hints.Set(ctx, SizeHintKey(storageKey), n); hintErr != nil {
		s.logger.Warn().
			Err(hintErr).
			Str("func", "Store.Save").
			Str("storage_key", storageKey).
			Msg("failed to record size hint, deleting entry")
		s.dropHint(ctx, storageKey)
	}

	return n, nil
}

// writeEncrypted streams r through the cipher into a temporary file next to
// the final location, then renames it into place. The rename is what makes a
// torn write impossible: the final path always holds either the old or the
// fully written new ciphertext.
func (s *Store) writeEncrypted(path string, r io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("create temp blob: %w", err)
	}

	n, err := io.Copy(s.cipher.EncryptStream(tmp), r)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("encrypt blob content: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("sync temp blob: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("close temp blob: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("publish blob: %w", err)
	}

	return n, nil
}

// Load opens the blob stored under storageKey and returns a reader that
// decrypts lazily as it is consumed. The key's read lock is held until the
// returned reader is closed — decryption is pull-based, so the lock must
// outlive this call. Close always releases the lock exactly once, and a
// construction failure after acquisition releases it as well.
//
// Returns [ErrLockTimeout] or [ErrBlobNotFound] as expected outcomes.
func (s *Store) Load(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	path, err := s.path(storageKey)
	if err != nil {
		return nil, err
	}

	handle, err := s.locker.AcquireRead(ctx, LockName(storageKey), s.lockTimeout)
	if err != nil {
		return nil, fmt.Errorf("acquire read lock: %w", err)
	}
	if handle == nil {
		return nil, ErrLockTimeout
	}

	f, err := os.Open(path)
	if err != nil {
		handle.Release(ctx)
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("open blob: %w", err)
	}

	return &lockedReader{
		reader: s.cipher.DecryptStream(f),
		file:   f,
		handle: handle,
	}, nil
}

// Delete removes the blob stored under storageKey together with its size
// hint. Returns [ErrBlobNotFound] when no blob exists; the hint is dropped
// regardless so no entry can outlive its blob.
func (s *Store) Delete(ctx context.Context, storageKey string) error {
	path, err := s.path(storageKey)
	if err != nil {
		return err
	}

	handle, err := s.locker.AcquireWrite(ctx, LockName(storageKey), s.lockTimeout)
	if err != nil {
		return fmt.Errorf("acquire write lock: %w", err)
	}
	if handle == nil {
		return ErrLockTimeout
	}
	defer handle.Release(ctx)

	removeErr := os.Remove(path)
	s.dropHint(ctx, storageKey)

	if removeErr != nil {
		if errors.Is(removeErr, os.ErrNotExist) {
			return ErrBlobNotFound
		}
		return fmt.Errorf("remove blob: %w", removeErr)
	}

	return nil
}

// Size returns the plaintext length of the blob under storageKey.
//
// Fast path: a cached hint is returned without touching the blob or taking
// any lock. Otherwise the blob is decrypted end to end under a read lock
// purely to count bytes (ciphertext and plaintext lengths are not assumed
// equal), and the fresh value becomes the new hint.
func (s *Store) Size(ctx context.Context, storageKey string) (int64, error) {
	hintKey := SizeHintKey(storageKey)

	size, ok, err := s.hints.Get(ctx, hintKey)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "Store.Size").
			Str("storage_key", storageKey).
			Msg("size hint lookup failed, recomputing")
	} else if ok {
		return size, nil
	}

	path, err := s.path(storageKey)
	if err != nil {
		return 0, err
	}

	handle, err := s.locker.AcquireRead(ctx, LockName(storageKey), s.lockTimeout)
	if err != nil {
		return 0, fmt.Errorf("acquire read lock: %w", err)
	}
	if handle == nil {
		return 0, ErrLockTimeout
	}
	defer handle.Release(ctx)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, ErrBlobNotFound
		}
		return 0, fmt.Errorf("open blob: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(io.Discard, s.cipher.DecryptStream(f))
	if err != nil {
		return 0, fmt.Errorf("count blob content: %w", err)
	}

	if hintErr := s.hints.Set(ctx, hintKey, n); hintErr != nil {
		s.logger.Warn().
			Err(hintErr).
			Str("func", "Store.Size").
			Str("storage_key", storageKey).
			Msg("failed to record recomputed size hint, deleting entry")
		s.dropHint(ctx, storageKey)
	}

	return n, nil
}

// dropHint deletes the size-cache entry for storageKey. Best effort: a failed
// delete is logged and otherwise ignored, since an absent entry is always a
// safe state for the cache.
func (s *Store) dropHint(ctx context.Context, storageKey string) {
	if err := s.hints.Delete(ctx, SizeHintKey(storageKey)); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "Store.dropHint").
			Str("storage_key", storageKey).
			Msg("failed to delete size hint")
	}
}

// lockedReader couples a decrypting reader with the read lock that protects
// it. The lock handle is release-once by construction; the file close is
// guarded here so double Close calls stay harmless.
type lockedReader struct {
	reader io.Reader
	file   *os.File
	handle *lock.Handle
	once   sync.Once
}

// Read implements [io.Reader].
func (lr *lockedReader) Read(p []byte) (int, error) {
	return lr.reader.Read(p)
}

// Close closes the underlying ciphertext file and releases the read lock
// exactly once, even if the stream was never fully consumed.
func (lr *lockedReader) Close() error {
	var err error
	lr.once.Do(func() {
		closeErr := lr.file.Close()
		releaseErr := lr.handle.Release(context.Background())
		err = errors.Join(closeErr, releaseErr)
	})
	return err
}
