// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the process cannot start without.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Blobs.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.KeyFilePath == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
