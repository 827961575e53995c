// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package blob

import "errors"

// Sentinel errors returned by [Store] methods to signal well-known outcomes.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrLockTimeout is returned when the blob's reader/writer lock could not
	// be acquired within the configured timeout. Nothing was mutated; the
	// operation is safe to retry and callers should surface it as a
	// "try again" condition, never as a silent drop.
	ErrLockTimeout = errors.New("blob lock not acquired within timeout")

	// ErrBlobNotFound is returned when no blob exists under the requested
	// storage key. Not retryable; maps to a 404-equivalent at the API edge.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrInvalidStorageKey is returned for storage keys that could escape the
	// at-rest directory or collide with temporary files.
	ErrInvalidStorageKey = errors.New("invalid storage key")
)
