// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/models"
)

// directoryRepository is the PostgreSQL-backed implementation of
// [DirectoryRepository]. Sibling uniqueness is carried by the unique index on
// (user_id, path_hash); the ciphertext column takes no part in lookups.
type directoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewDirectoryRepository constructs a [DirectoryRepository] backed by the
// provided database connection and logger.
func NewDirectoryRepository(db *DB, logger *logger.Logger) DirectoryRepository {
	return &directoryRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a directory row. Returns [ErrNameConflict] when a directory
// with the same path hash already exists for the user.
func (d *directoryRepository) Create(ctx context.Context, userID int64, path models.EncryptedField) (models.Directory, error) {
	log := logger.FromContext(ctx)

	dir := models.Directory{
		UserID: userID,
		Path:   path,
	}

	err := d.DB.QueryRowContext(ctx, createDirectory, userID, path.Cipher, path.Hash).
		Scan(&dir.ID, &dir.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("func", "directoryRepository.Create").
				Int64("user_id", userID).
				Msg("directory path already exists")
			return models.Directory{}, ErrNameConflict
		}

		log.Err(err).
			Str("func", "directoryRepository.Create").
			Int64("user_id", userID).
			Msg("failed to insert directory")
		return models.Directory{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return dir, nil
}

// GetByPathHash looks a directory up by the deterministic hash of its path.
// Returns [ErrDirectoryNotFound] when no row matches.
func (d *directoryRepository) GetByPathHash(ctx context.Context, userID int64, pathHash string) (models.Directory, error) {
	log := logger.FromContext(ctx)

	var dir models.Directory
	err := d.DB.QueryRowContext(ctx, getDirectoryByPathHash, userID, pathHash).Scan(
		&dir.ID,
		&dir.UserID,
		&dir.Path.Cipher,
		&dir.Path.Hash,
		&dir.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Directory{}, ErrDirectoryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "directoryRepository.GetByPathHash").
			Int64("user_id", userID).
			Msg("failed to query directory by path hash")
		return models.Directory{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return dir, nil
}

// List returns every directory owned by the user.
func (d *directoryRepository) List(ctx context.Context, userID int64) ([]models.Directory, error) {
	log := logger.FromContext(ctx)

	rows, err := d.DB.QueryContext(ctx, listDirectories, userID)
	if err != nil {
		log.Err(err).
			Str("func", "directoryRepository.List").
			Int64("user_id", userID).
			Msg("failed to query directories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	dirs := make([]models.Directory, 0, 16)

	for rows.Next() {
		var dir models.Directory

		scanErr := rows.Scan(
			&dir.ID,
			&dir.UserID,
			&dir.Path.Cipher,
			&dir.Path.Hash,
			&dir.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "directoryRepository.List").
				Int64("user_id", userID).
				Msg("failed to scan directory row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		dirs = append(dirs, dir)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "directoryRepository.List").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return dirs, nil
}

// Delete removes a directory row. Returns [ErrDirectoryNotFound] when the row
// does not exist or belongs to another user.
func (d *directoryRepository) Delete(ctx context.Context, userID, directoryID int64) error {
	log := logger.FromContext(ctx)

	res, err := d.DB.ExecContext(ctx, deleteDirectory, directoryID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "directoryRepository.Delete").
			Int64("directory_id", directoryID).
			Msg("failed to delete directory")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrDirectoryNotFound
	}

	return nil
}
