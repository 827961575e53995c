// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

// Package lock provides named reader/writer locks shared by every process
// replica. The production implementation coordinates through PostgreSQL
// advisory locks; an in-memory implementation with identical semantics exists
// for single-process deployments and tests.
//
// Acquisition is always bounded by an explicit timeout. A timeout is a
// normal, expected outcome and is reported as a nil handle with a nil error —
// callers must check for it, not for an error value.
package lock

import (
	"context"
	"sync"
	"time"
)

// DefaultTimeout bounds lock acquisition when the caller passes a
// non-positive timeout. Lock waits are never unbounded.
const DefaultTimeout = 5 * time.Second

// Locker is a distributed reader/writer lock factory keyed by name.
//
// Semantics are the classic RW contract: any number of concurrent readers,
// or exactly one writer, never both. Locks on distinct names are fully
// independent. Both methods return (nil, nil) when the lock cannot be
// acquired within timeout, and a non-nil error only for infrastructure
// failures or context cancellation.
type Locker interface {
	AcquireWrite(ctx context.Context, name string, timeout time.Duration) (*Handle, error)
	AcquireRead(ctx context.Context, name string, timeout time.Duration) (*Handle, error)
}

// Handle represents one successful lock acquisition. It is owned exclusively
// by the acquiring operation, must not be shared or persisted, and must be
// released on every exit path.
type Handle struct {
	once    sync.Once
	release func(ctx context.Context) error
}

func newHandle(release func(ctx context.Context) error) *Handle {
	return &Handle{release: release}
}

// Release frees the lock. It is safe to call multiple times; only the first
// call takes effect, every subsequent call returns nil.
func (h *Handle) Release(ctx context.Context) error {
	var err error
	h.once.Do(func() {
		err = h.release(ctx)
	})
	return err
}
