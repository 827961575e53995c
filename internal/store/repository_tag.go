// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package store

import (
	"context"
	"fmt"

	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/models"
)

// tagRepository is the PostgreSQL-backed implementation of [TagRepository].
type tagRepository struct {
	*DB
	logger *logger.Logger
}

// NewTagRepository constructs a [TagRepository] backed by the provided
// database connection and logger.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	return &tagRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a tag row. Returns [ErrNameConflict] when the user already
// has a tag with the same name hash.
func (t *tagRepository) Create(ctx context.Context, userID int64, name models.EncryptedField) (models.Tag, error) {
	log := logger.FromContext(ctx)

	tag := models.Tag{
		UserID: userID,
		Name:   name,
	}

	err := t.DB.QueryRowContext(ctx, createTag, userID, name.Cipher, name.Hash).Scan(&tag.ID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("func", "tagRepository.Create").
				Int64("user_id", userID).
				Msg("tag name already exists")
			return models.Tag{}, ErrNameConflict
		}

		log.Err(err).
			Str("func", "tagRepository.Create").
			Int64("user_id", userID).
			Msg("failed to insert tag")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tag, nil
}

// List returns every tag owned by the user.
func (t *tagRepository) List(ctx context.Context, userID int64) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := t.DB.QueryContext(ctx, listTags, userID)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.List").
			Int64("user_id", userID).
			Msg("failed to query tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0, 16)

	for rows.Next() {
		var tag models.Tag

		scanErr := rows.Scan(&tag.ID, &tag.UserID, &tag.Name.Cipher, &tag.Name.Hash)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "tagRepository.List").
				Int64("user_id", userID).
				Msg("failed to scan tag row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tags = append(tags, tag)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "tagRepository.List").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tags, nil
}

// Attach links a tag to a file. Attaching an already attached tag is a no-op.
func (t *tagRepository) Attach(ctx context.Context, fileID, tagID int64) error {
	log := logger.FromContext(ctx)

	if _, err := t.DB.ExecContext(ctx, attachTag, fileID, tagID); err != nil {
		log.Err(err).
			Str("func", "tagRepository.Attach").
			Int64("file_id", fileID).
			Int64("tag_id", tagID).
			Msg("failed to attach tag")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Detach unlinks a tag from a file. Returns [ErrTagNotFound] when the
// attachment does not exist.
func (t *tagRepository) Detach(ctx context.Context, fileID, tagID int64) error {
	log := logger.FromContext(ctx)

	res, err := t.DB.ExecContext(ctx, detachTag, fileID, tagID)
	if err != nil {
		log.Err(err).
			Str("func", "tagRepository.Detach").
			Int64("file_id", fileID).
			Int64("tag_id", tagID).
			Msg("failed to detach tag")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTagNotFound
	}

	return nil
}
