package channel

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherhold/cipherhold/models"
)

func collect(t *testing.T, ch <-chan models.SyncMessage, n int) []models.SyncMessage {
	t.Helper()

	out := make([]models.SyncMessage, 0, n)
	for len(out) < n {
		select {
		case msg := <-ch:
			out = append(out, msg)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for message %d of %d", len(out)+1, n)
		}
	}
	return out
}

func assertSilent(t *testing.T, ch <-chan models.SyncMessage) {
	t.Helper()

	select {
	case msg := <-ch:
		t.Fatalf("unexpected message delivered: %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestChannelName(t *testing.T) {
	assert.Equal(t, "FileSync-pub-42", ChannelName(42))
}

func TestMemoryChannel_DeliversToLiveSubscribers(t *testing.T) {
	mc := NewMemoryChannel()
	ctx := context.Background()

	got := make(chan models.SyncMessage, 8)
	sub, err := mc.Subscribe(ctx, 1, func(msg models.SyncMessage) { got <- msg })
	require.NoError(t, err)
	defer sub.Close()

	msg := models.SyncMessage{FileID: 1, ModifiedAt: time.Now().UTC(), SenderClientID: "editor-a"}
	require.NoError(t, mc.Publish(ctx, 1, msg))

	received := collect(t, got, 1)
	assert.Equal(t, "editor-a", received[0].SenderClientID)
	assert.Equal(t, int64(1), received[0].FileID)
}

func TestMemoryChannel_NoReplayForLateSubscriber(t *testing.T) {
	mc := NewMemoryChannel()
	ctx := context.Background()

	// published into the void: nobody is subscribed yet
	require.NoError(t, mc.Publish(ctx, 1, models.SyncMessage{FileID: 1, SenderClientID: "early"}))

	got := make(chan models.SyncMessage, 8)
	sub, err := mc.Subscribe(ctx, 1, func(msg models.SyncMessage) { got <- msg })
	require.NoError(t, err)
	defer sub.Close()

	assertSilent(t, got)
}

func TestMemoryChannel_ChannelsAreIndependent(t *testing.T) {
	mc := NewMemoryChannel()
	ctx := context.Background()

	got := make(chan models.SyncMessage, 8)
	sub, err := mc.Subscribe(ctx, 1, func(msg models.SyncMessage) { got <- msg })
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, mc.Publish(ctx, 2, models.SyncMessage{FileID: 2, SenderClientID: "other-file"}))

	assertSilent(t, got)
}

func TestMemoryChannel_AllSubscribersReceive(t *testing.T) {
	mc := NewMemoryChannel()
	ctx := context.Background()

	gotA := make(chan models.SyncMessage, 8)
	gotB := make(chan models.SyncMessage, 8)

	subA, err := mc.Subscribe(ctx, 1, func(msg models.SyncMessage) { gotA <- msg })
	require.NoError(t, err)
	defer subA.Close()

	subB, err := mc.Subscribe(ctx, 1, func(msg models.SyncMessage) { gotB <- msg })
	require.NoError(t, err)
	defer subB.Close()

	require.NoError(t, mc.Publish(ctx, 1, models.SyncMessage{FileID: 1, SenderClientID: "x"}))

	collect(t, gotA, 1)
	collect(t, gotB, 1)
}

func TestMemoryChannel_CloseStopsDelivery(t *testing.T) {
	mc := NewMemoryChannel()
	ctx := context.Background()

	got := make(chan models.SyncMessage, 8)
	sub, err := mc.Subscribe(ctx, 1, func(msg models.SyncMessage) { got <- msg })
	require.NoError(t, err)

	sub.Close()
	sub.Close() // double close is harmless

	require.NoError(t, mc.Publish(ctx, 1, models.SyncMessage{FileID: 1, SenderClientID: "late"}))
	assertSilent(t, got)
}

func TestMemoryChannel_PerSubscriberOrderPreserved(t *testing.T) {
	mc := NewMemoryChannel()
	ctx := context.Background()

	got := make(chan models.SyncMessage, subscriberQueueLen)
	sub, err := mc.Subscribe(ctx, 1, func(msg models.SyncMessage) { got <- msg })
	require.NoError(t, err)
	defer sub.Close()

	senders := []string{"m1", "m2", "m3", "m4", "m5"}
	for _, s := range senders {
		require.NoError(t, mc.Publish(ctx, 1, models.SyncMessage{FileID: 1, SenderClientID: s}))
	}

	received := collect(t, got, len(senders))
	for i, msg := range received {
		assert.Equal(t, senders[i], msg.SenderClientID, "delivery order must match publish order")
	}
}

func TestMemoryChannel_ConcurrentPublishAndSubscribe(t *testing.T) {
	mc := NewMemoryChannel()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()

			sub, err := mc.Subscribe(ctx, n%4, func(models.SyncMessage) {})
			assert.NoError(t, err)
			assert.NoError(t, mc.Publish(ctx, n%4, models.SyncMessage{FileID: n % 4}))
			sub.Close()
		}(int64(i))
	}
	wg.Wait()
}

func TestRegistry_FirstAndLastTransitions(t *testing.T) {
	r := newRegistry()

	id1, first := r.add("FileSync-pub-1", func(models.SyncMessage) {})
	assert.True(t, first, "first subscriber should trigger a listen")

	id2, first := r.add("FileSync-pub-1", func(models.SyncMessage) {})
	assert.False(t, first)

	assert.False(t, r.remove("FileSync-pub-1", id1))
	assert.True(t, r.remove("FileSync-pub-1", id2), "last removal should trigger an unlisten")

	// removing an unknown subscriber is a no-op
	assert.False(t, r.remove("FileSync-pub-1", id2))
}
