// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package lock

import (
	"context"
	"time"
)

// MemoryLocker implements [Locker] inside a single process. It mirrors the
// advisory-lock semantics exactly (shared readers, exclusive writer, bounded
// wait returning nil on timeout) and is used in tests and single-replica
// deployments that run without a coordination database.
type MemoryLocker struct {
	mu     chan struct{} // guards states
	states map[string]*rwState
}

// rwState tracks the grant state of one lock name. changed is closed and
// replaced on every release so that all waiters re-evaluate.
type rwState struct {
	readers int
	writer  bool
	changed chan struct{}
}

// NewMemoryLocker constructs an empty [MemoryLocker].
func NewMemoryLocker() *MemoryLocker {
	m := &MemoryLocker{
		mu:     make(chan struct{}, 1),
		states: make(map[string]*rwState),
	}
	m.mu <- struct{}{}
	return m
}

// AcquireWrite implements [Locker].
func (m *MemoryLocker) AcquireWrite(ctx context.Context, name string, timeout time.Duration) (*Handle, error) {
	return m.acquire(ctx, name, timeout, false)
}

// AcquireRead implements [Locker].
func (m *MemoryLocker) AcquireRead(ctx context.Context, name string, timeout time.Duration) (*Handle, error) {
	return m.acquire(ctx, name, timeout, true)
}

func (m *MemoryLocker) acquire(ctx context.Context, name string, timeout time.Duration, shared bool) (*Handle, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case <-m.mu:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		st, ok := m.states[name]
		if !ok {
			st = &rwState{changed: make(chan struct{})}
			m.states[name] = st
		}

		granted := false
		if shared {
			if !st.writer {
				st.readers++
				granted = true
			}
		} else {
			if !st.writer && st.readers == 0 {
				st.writer = true
				granted = true
			}
		}

		if granted {
			m.mu <- struct{}{}
			return newHandle(func(context.Context) error {
				m.release(name, shared)
				return nil
			}), nil
		}

		wait := st.changed
		m.mu <- struct{}{}

		select {
		case <-wait:
			// grant state changed, try again
		case <-deadline.C:
			return nil, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (m *MemoryLocker) release(name string, shared bool) {
	<-m.mu
	defer func() { m.mu <- struct{}{} }()

	st, ok := m.states[name]
	if !ok {
		return
	}

	if shared {
		st.readers--
	} else {
		st.writer = false
	}

	if st.readers == 0 && !st.writer {
		delete(m.states, name)
	}

	// wake every waiter on this name
	close(st.changed)
	st.changed = make(chan struct{})
}
