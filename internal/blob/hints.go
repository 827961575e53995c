// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package blob

import (
	"context"
	"sync"
)

// SizeHintStore is the best-effort cache of plaintext blob lengths, keyed by
// the same naming convention as the blobs themselves ("FileSize:{key}").
//
// The cache is advisory: Get reporting absence is always safe (the caller
// recomputes), but a present value is trusted without touching the blob, so
// writers must invalidate on every mutation and on any uncertainty the entry
// is deleted, never left stale. The production implementation lives in the
// store package (a catalog-side table shared by all replicas).
type SizeHintStore interface {
	// Get returns the cached size and true, or false when no usable entry
	// exists. An unparseable entry counts as absent.
	Get(ctx context.Context, key string) (int64, bool, error)

	// Set records size under key, overwriting any previous entry.
	Set(ctx context.Context, key string, size int64) error

	// Delete removes the entry for key. Deleting an absent entry is a no-op.
	Delete(ctx context.Context, key string) error
}

// MemoryHintStore is an in-process [SizeHintStore] for tests and
// single-replica deployments.
type MemoryHintStore struct {
	mu    sync.RWMutex
	sizes map[string]int64
}

// NewMemoryHintStore constructs an empty [MemoryHintStore].
func NewMemoryHintStore() *MemoryHintStore {
	return &MemoryHintStore{sizes: make(map[string]int64)}
}

// Get implements [SizeHintStore].
func (m *MemoryHintStore) Get(_ context.Context, key string) (int64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	size, ok := m.sizes[key]
	return size, ok, nil
}

// Set implements [SizeHintStore].
func (m *MemoryHintStore) Set(_ context.Context, key string, size int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sizes[key] = size
	return nil
}

// Delete implements [SizeHintStore].
func (m *MemoryHintStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sizes, key)
	return nil
}
