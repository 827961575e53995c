// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

// Package channel implements per-file change-notification channels:
// fire-and-forget publish, push delivery to live subscribers only, no
// backlog and no replay. A subscriber that is not attached at publish time
// simply never sees that message.
//
// The production transport is PostgreSQL LISTEN/NOTIFY, which reaches every
// process replica through the shared database; an in-memory transport with
// the same contract serves tests and single-replica runs.
package channel

import (
	"context"
	"fmt"
	"sync"

	"github.com/cipherhold/cipherhold/models"
)

// subscriberQueueLen bounds the per-subscriber delivery queue. A subscriber
// that falls this far behind starts losing messages, which the at-most-once
// contract allows.
const subscriberQueueLen = 16

// Channel is a named publish/subscribe notification transport keyed by file
// id. Publish makes at most one delivery attempt per live subscriber and
// never blocks on slow consumers. Within one file id, messages that are
// delivered arrive in publish order.
type Channel interface {
	// Publish sends msg to every current subscriber of fileID's channel.
	// Fire-and-forget: no acknowledgment, no retry, no persistence.
	Publish(ctx context.Context, fileID int64, msg models.SyncMessage) error

	// Subscribe attaches fn to fileID's channel. fn is invoked
	// asynchronously, concurrently with other work, for each message
	// published while the subscription is live.
	Subscribe(ctx context.Context, fileID int64, fn func(models.SyncMessage)) (*Subscription, error)
}

// ChannelName derives the logical channel identity for a file id. Every
// replica publishing or listening for the same file computes the same name.
func ChannelName(fileID int64) string {
	return fmt.Sprintf("FileSync-pub-%d", fileID)
}

// Subscription represents one live attachment to a channel. Closing it stops
// further callbacks; a callback already in flight may still complete.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Close detaches the subscriber. Safe to call multiple times.
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}

// subscriber owns a bounded delivery queue drained by a dedicated goroutine,
// which keeps per-subscriber delivery ordered while publishers never block.
type subscriber struct {
	queue chan models.SyncMessage
}

func newSubscriber(fn func(models.SyncMessage)) *subscriber {
	sub := &subscriber{queue: make(chan models.SyncMessage, subscriberQueueLen)}
	go func() {
		for msg := range sub.queue {
			fn(msg)
		}
	}()
	return sub
}

// registry is the subscriber bookkeeping shared by the transports. All queue
// sends happen under the read lock and queue closes under the write lock, so
// a send can never race a close.
type registry struct {
	mu     sync.RWMutex
	subs   map[string]map[int64]*subscriber
	nextID int64
}

func newRegistry() *registry {
	return &registry{subs: make(map[string]map[int64]*subscriber)}
}

// add attaches fn to name and reports whether it is the first subscriber of
// that channel.
func (r *registry) add(name string, fn func(models.SyncMessage)) (id int64, first bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byID, ok := r.subs[name]
	if !ok {
		byID = make(map[int64]*subscriber)
		r.subs[name] = byID
	}

	r.nextID++
	byID[r.nextID] = newSubscriber(fn)

	return r.nextID, !ok
}

// remove detaches the subscriber and reports whether the channel is now
// empty.
func (r *registry) remove(name string, id int64) (last bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byID, ok := r.subs[name]
	if !ok {
		return false
	}

	sub, ok := byID[id]
	if !ok {
		return false
	}

	delete(byID, id)
	close(sub.queue)

	if len(byID) == 0 {
		delete(r.subs, name)
		return true
	}
	return false
}

// dispatch enqueues msg for every current subscriber of name, dropping the
// message for subscribers whose queue is full.
func (r *registry) dispatch(name string, msg models.SyncMessage) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sub := range r.subs[name] {
		select {
		case sub.queue <- msg:
		default:
			// subscriber too slow; at-most-once permits the drop
		}
	}
}
