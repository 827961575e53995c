package blob

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherhold/cipherhold/internal/crypto"
	"github.com/cipherhold/cipherhold/internal/lock"
	"github.com/cipherhold/cipherhold/internal/logger"
)

func newTestStore(t *testing.T, locker lock.Locker, timeout time.Duration) (*Store, *MemoryHintStore) {
	t.Helper()

	material := &crypto.KeyMaterial{
		CipherKey: bytes.Repeat([]byte{0x42}, 32),
		IV:        bytes.Repeat([]byte{0x24}, 16),
		HashKey:   bytes.Repeat([]byte{0x7F}, 32),
	}
	cipher, err := crypto.NewCipher(material)
	require.NoError(t, err)

	hints := NewMemoryHintStore()
	store, err := NewStore(t.TempDir(), cipher, locker, hints, timeout, logger.Nop())
	require.NoError(t, err)

	return store, hints
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, lock.NewMemoryLocker(), time.Second)
	ctx := context.Background()

	payload := bytes.Repeat([]byte("binary\x00content "), 2048)

	n, err := store.Save(ctx, "key-1", bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)

	rc, err := store.Load(ctx, "key-1")
	require.NoError(t, err)

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	assert.Equal(t, payload, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t, lock.NewMemoryLocker(), time.Second)
	ctx := context.Background()

	_, err := store.Save(ctx, "key-1", strings.NewReader("v1"))
	require.NoError(t, err)
	_, err = store.Save(ctx, "key-1", strings.NewReader("version two"))
	require.NoError(t, err)

	rc, err := store.Load(ctx, "key-1")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "version two", string(got))
}

func TestStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t, lock.NewMemoryLocker(), time.Second)
	ctx := context.Background()

	_, err := store.Load(ctx, "nope")
	require.ErrorIs(t, err, ErrBlobNotFound)

	// the read lock taken during the failed Load must have been released:
	// a write acquire on the same key succeeds immediately
	n, err := store.Save(ctx, "nope", strings.NewReader("now it exists"))
	require.NoError(t, err)
	assert.Equal(t, int64(13), n)
}

func TestStore_Delete(t *testing.T) {
	store, hints := newTestStore(t, lock.NewMemoryLocker(), time.Second)
	ctx := context.Background()

	_, err := store.Save(ctx, "key-1", strings.NewReader("doomed"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "key-1"))

	_, err = store.Load(ctx, "key-1")
	require.ErrorIs(t, err, ErrBlobNotFound)

	_, ok, err := hints.Get(ctx, SizeHintKey("key-1"))
	require.NoError(t, err)
	assert.False(t, ok, "size hint must not outlive its blob")

	require.ErrorIs(t, store.Delete(ctx, "key-1"), ErrBlobNotFound)
}

func TestStore_SizeUsesHint(t *testing.T) {
	store, hints := newTestStore(t, lock.NewMemoryLocker(), time.Second)
	ctx := context.Background()

	_, err := store.Save(ctx, "key-1", strings.NewReader(strings.Repeat("x", 100)))
	require.NoError(t, err)

	size, err := store.Size(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), size)

	// Poison the hint: a cache hit must be returned verbatim, proving the
	// fast path does not touch the blob.
	require.NoError(t, hints.Set(ctx, SizeHintKey("key-1"), 999))

	size, err = store.Size(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, int64(999), size)
}

func TestStore_SizeRecomputesOnMiss(t *testing.T) {
	store, hints := newTestStore(t, lock.NewMemoryLocker(), time.Second)
	ctx := context.Background()

	_, err := store.Save(ctx, "key-1", strings.NewReader(strings.Repeat("y", 257)))
	require.NoError(t, err)

	// drop the hint recorded by Save; Size must fall back to a counting
	// decrypt pass and then re-populate the cache
	require.NoError(t, hints.Delete(ctx, SizeHintKey("key-1")))

	size, err := store.Size(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, int64(257), size)

	cached, ok, err := hints.Get(ctx, SizeHintKey("key-1"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(257), cached)
}

func TestStore_SizeEmptyBlob(t *testing.T) {
	store, _ := newTestStore(t, lock.NewMemoryLocker(), time.Second)
	ctx := context.Background()

	_, err := store.Save(ctx, "empty", bytes.NewReader(nil))
	require.NoError(t, err)

	size, err := store.Size(ctx, "empty")
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
}

func TestStore_SizeMissing(t *testing.T) {
	store, _ := newTestStore(t, lock.NewMemoryLocker(), time.Second)

	_, err := store.Size(context.Background(), "missing")
	require.ErrorIs(t, err, ErrBlobNotFound)
}

func TestStore_SaveInvalidatesStaleHint(t *testing.T) {
	store, hints := newTestStore(t, lock.NewMemoryLocker(), time.Second)
	ctx := context.Background()

	_, err := store.Save(ctx, "key-1", strings.NewReader(strings.Repeat("a", 10)))
	require.NoError(t, err)

	size, err := store.Size(ctx, "key-1")
	require.NoError(t, err)
	require.Equal(t, int64(10), size)

	// overwrite with different length; the previously cached 10 must never
	// be observable again
	_, err = store.Save(ctx, "key-1", strings.NewReader(strings.Repeat("b", 64)))
	require.NoError(t, err)

	size, err = store.Size(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, int64(64), size)

	cached, ok, err := hints.Get(ctx, SizeHintKey("key-1"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(64), cached)
}

func TestStore_SaveLockTimeout(t *testing.T) {
	locker := lock.NewMemoryLocker()
	store, _ := newTestStore(t, locker, 50*time.Millisecond)
	ctx := context.Background()

	// an out-of-band writer holds the blob's lock longer than the store's
	// acquisition timeout
	held, err := locker.AcquireWrite(ctx, LockName("key-1"), time.Second)
	require.NoError(t, err)
	require.NotNil(t, held)
	defer held.Release(ctx)

	_, err = store.Save(ctx, "key-1", strings.NewReader("loser"))
	require.ErrorIs(t, err, ErrLockTimeout)

	_, err = store.Load(ctx, "key-1")
	require.ErrorIs(t, err, ErrLockTimeout)

	_, err = store.Size(ctx, "key-1")
	require.ErrorIs(t, err, ErrLockTimeout)

	require.ErrorIs(t, store.Delete(ctx, "key-1"), ErrLockTimeout)
}

func TestStore_LoadHoldsReadLockUntilClose(t *testing.T) {
	locker := lock.NewMemoryLocker()
	store, _ := newTestStore(t, locker, 50*time.Millisecond)
	ctx := context.Background()

	_, err := store.Save(ctx, "key-1", strings.NewReader("content"))
	require.NoError(t, err)

	rc, err := store.Load(ctx, "key-1")
	require.NoError(t, err)

	// while the decrypting reader is open, writers are shut out
	_, err = store.Save(ctx, "key-1", strings.NewReader("blocked"))
	require.ErrorIs(t, err, ErrLockTimeout)

	require.NoError(t, rc.Close())
	require.NoError(t, rc.Close(), "double close must be harmless")

	_, err = store.Save(ctx, "key-1", strings.NewReader("unblocked"))
	require.NoError(t, err)
}

func TestStore_ConcurrentSavesNeverInterleave(t *testing.T) {
	store, _ := newTestStore(t, lock.NewMemoryLocker(), 5*time.Second)
	ctx := context.Background()

	payloadA := bytes.Repeat([]byte{'a'}, 1<<16)
	payloadB := bytes.Repeat([]byte{'b'}, 1<<16)

	var wg sync.WaitGroup
	for _, p := range [][]byte{payloadA, payloadB} {
		wg.Add(1)
		go func(payload []byte) {
			defer wg.Done()
			_, err := store.Save(ctx, "contended", bytes.NewReader(payload))
			assert.NoError(t, err)
		}(p)
	}
	wg.Wait()

	rc, err := store.Load(ctx, "contended")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)

	// the surviving blob is exactly one full payload, never a mixture
	if !bytes.Equal(got, payloadA) && !bytes.Equal(got, payloadB) {
		t.Fatal("blob content is a mixture of concurrent writes")
	}
}

func TestStore_RejectsInvalidStorageKeys(t *testing.T) {
	store, _ := newTestStore(t, lock.NewMemoryLocker(), time.Second)
	ctx := context.Background()

	for _, key := range []string{"", "../escape", "a/b", `a\b`} {
		_, err := store.Save(ctx, key, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidStorageKey, "key %q", key)
	}
}
