package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 200 * time.Millisecond

func TestMemoryLocker_WriterExcludesWriter(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	h1, err := l.AcquireWrite(ctx, "blob-1", testTimeout)
	require.NoError(t, err)
	require.NotNil(t, h1)

	// second writer times out while the first holds the lock
	h2, err := l.AcquireWrite(ctx, "blob-1", 50*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, h2, "contended write acquire must time out to nil, not error")

	require.NoError(t, h1.Release(ctx))

	h3, err := l.AcquireWrite(ctx, "blob-1", testTimeout)
	require.NoError(t, err)
	require.NotNil(t, h3)
	require.NoError(t, h3.Release(ctx))
}

func TestMemoryLocker_ReadersShare(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	r1, err := l.AcquireRead(ctx, "blob-1", testTimeout)
	require.NoError(t, err)
	require.NotNil(t, r1)

	r2, err := l.AcquireRead(ctx, "blob-1", testTimeout)
	require.NoError(t, err)
	require.NotNil(t, r2, "two readers must hold the same lock concurrently")

	// a writer cannot join the readers
	w, err := l.AcquireWrite(ctx, "blob-1", 50*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, w)

	require.NoError(t, r1.Release(ctx))
	require.NoError(t, r2.Release(ctx))

	w, err = l.AcquireWrite(ctx, "blob-1", testTimeout)
	require.NoError(t, err)
	require.NotNil(t, w)
	require.NoError(t, w.Release(ctx))
}

func TestMemoryLocker_WriterExcludesReaders(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	w, err := l.AcquireWrite(ctx, "blob-1", testTimeout)
	require.NoError(t, err)
	require.NotNil(t, w)

	r, err := l.AcquireRead(ctx, "blob-1", 50*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, r, "reader must not slip in under a writer")

	require.NoError(t, w.Release(ctx))
}

func TestMemoryLocker_DistinctNamesIndependent(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	w1, err := l.AcquireWrite(ctx, "blob-1", testTimeout)
	require.NoError(t, err)
	require.NotNil(t, w1)

	// a different name is a different lock entirely
	w2, err := l.AcquireWrite(ctx, "blob-2", testTimeout)
	require.NoError(t, err)
	require.NotNil(t, w2)

	require.NoError(t, w1.Release(ctx))
	require.NoError(t, w2.Release(ctx))
}

func TestMemoryLocker_WaiterWokenByRelease(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	w, err := l.AcquireWrite(ctx, "blob-1", testTimeout)
	require.NoError(t, err)
	require.NotNil(t, w)

	acquired := make(chan *Handle, 1)
	go func() {
		h, err := l.AcquireWrite(ctx, "blob-1", 2*time.Second)
		assert.NoError(t, err)
		acquired <- h
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, w.Release(ctx))

	select {
	case h := <-acquired:
		require.NotNil(t, h, "waiter should obtain the lock after release")
		require.NoError(t, h.Release(ctx))
	case <-time.After(2 * time.Second):
		t.Fatal("waiter was never woken")
	}
}

func TestMemoryLocker_CancelledContext(t *testing.T) {
	l := NewMemoryLocker()

	w, err := l.AcquireWrite(context.Background(), "blob-1", testTimeout)
	require.NoError(t, err)
	require.NotNil(t, w)
	defer w.Release(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = l.AcquireWrite(ctx, "blob-1", time.Minute)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHandle_ReleaseIdempotent(t *testing.T) {
	calls := 0
	h := newHandle(func(context.Context) error {
		calls++
		return nil
	})

	ctx := context.Background()
	require.NoError(t, h.Release(ctx))
	require.NoError(t, h.Release(ctx))
	require.NoError(t, h.Release(ctx))
	assert.Equal(t, 1, calls, "release must run exactly once")
}

func TestMemoryLocker_ConcurrentWritersSerialize(t *testing.T) {
	l := NewMemoryLocker()
	ctx := context.Background()

	var inCritical, maxInCritical int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			h, err := l.AcquireWrite(ctx, "blob-1", 5*time.Second)
			if err != nil || h == nil {
				t.Errorf("acquire failed: handle=%v err=%v", h, err)
				return
			}

			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inCritical--
			mu.Unlock()

			_ = h.Release(ctx)
		}()
	}

	wg.Wait()
	assert.Equal(t, 1, maxInCritical, "writers must never overlap")
}

func TestLockKey_StableAndDistinct(t *testing.T) {
	// replicas hash lock names independently; the mapping must be stable
	assert.Equal(t, lockKey("FileLock:abc"), lockKey("FileLock:abc"))
	assert.NotEqual(t, lockKey("FileLock:abc"), lockKey("FileLock:abd"))
}
