// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package channel

import (
	"context"

	"github.com/cipherhold/cipherhold/models"
)

// MemoryChannel is an in-process [Channel] for tests and single-replica
// deployments. Delivery semantics match the Postgres transport: live
// subscribers only, at most once, no replay.
type MemoryChannel struct {
	registry *registry
}

// NewMemoryChannel constructs an empty [MemoryChannel].
func NewMemoryChannel() *MemoryChannel {
	return &MemoryChannel{registry: newRegistry()}
}

// Publish implements [Channel].
func (m *MemoryChannel) Publish(_ context.Context, fileID int64, msg models.SyncMessage) error {
	m.registry.dispatch(ChannelName(fileID), msg)
	return nil
}

// Subscribe implements [Channel].
func (m *MemoryChannel) Subscribe(_ context.Context, fileID int64, fn func(models.SyncMessage)) (*Subscription, error) {
	name := ChannelName(fileID)
	id, _ := m.registry.add(name, fn)

	return &Subscription{cancel: func() {
		m.registry.remove(name, id)
	}}, nil
}
