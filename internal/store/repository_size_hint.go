// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/cipherhold/cipherhold/internal/blob"
	"github.com/cipherhold/cipherhold/internal/logger"
)

// sizeHintRepository persists decrypted-size hints in the catalog database so
// every server instance shares one cache. Values are stored as text; a value
// that fails to parse is treated the same as a missing one and is removed so
// the caller recomputes it.
type sizeHintRepository struct {
	*DB
	logger *logger.Logger
}

// NewSizeHintRepository constructs a database-backed [blob.SizeHintStore].
func NewSizeHintRepository(db *DB, logger *logger.Logger) blob.SizeHintStore {
	return &sizeHintRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sizeHintRepository) Get(ctx context.Context, key string) (int64, bool, error) {
	log := logger.FromContext(ctx)

	var value string
	err := s.DB.QueryRowContext(ctx, getSizeHint, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "sizeHintRepository.Get").
			Str("key", key).
			Msg("failed to query size hint")
		return 0, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	size, parseErr := strconv.ParseInt(value, 10, 64)
	if parseErr != nil {
		log.Warn().
			Str("func", "sizeHintRepository.Get").
			Str("key", key).
			Str("value", value).
			Msg("unparseable size hint, dropping it")
		if delErr := s.Delete(ctx, key); delErr != nil {
			return 0, false, delErr
		}
		return 0, false, nil
	}

	return size, true, nil
}

func (s *sizeHintRepository) Set(ctx context.Context, key string, size int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, upsertSizeHint, key, strconv.FormatInt(size, 10)); err != nil {
		log.Err(err).
			Str("func", "sizeHintRepository.Set").
			Str("key", key).
			Msg("failed to upsert size hint")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sizeHintRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, deleteSizeHint, key); err != nil {
		log.Err(err).
			Str("func", "sizeHintRepository.Delete").
			Str("key", key).
			Msg("failed to delete size hint")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
