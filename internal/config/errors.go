// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or blob directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key or key file path).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
