// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/models"
)

// fileRepository is the PostgreSQL-backed implementation of [FileRepository].
//
// The name pair (name_cipher, name_hash) is always written together; sibling
// uniqueness rides on the (directory_id, name_hash) index. storage_key is
// written once at Create and never updated afterwards — moving or renaming a
// file must not disturb the at-rest blob identity.
type fileRepository struct {
	*DB
	logger *logger.Logger
}

// NewFileRepository constructs a [FileRepository] backed by the provided
// database connection and logger.
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	return &fileRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a file row and writes the generated id and timestamps back
// into file. Returns [ErrNameConflict] when a sibling with the same name hash
// (or a row with the same storage key) already exists.
func (f *fileRepository) Create(ctx context.Context, file *models.File) error {
	log := logger.FromContext(ctx)

	err := f.DB.QueryRowContext(ctx, createFile,
		file.UserID,
		file.DirectoryID,
		file.Name.Cipher,
		file.Name.Hash,
		file.StorageKey,
	).Scan(&file.ID, &file.CreatedAt, &file.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("func", "fileRepository.Create").
				Int64("directory_id", file.DirectoryID).
				Msg("file name already exists in directory")
			return ErrNameConflict
		}

		log.Err(err).
			Str("func", "fileRepository.Create").
			Int64("user_id", file.UserID).
			Int64("directory_id", file.DirectoryID).
			Msg("failed to insert file")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetByID returns the file row with the given id owned by userID.
// Returns [ErrFileNotFound] when no row matches.
func (f *fileRepository) GetByID(ctx context.Context, userID, fileID int64) (models.File, error) {
	log := logger.FromContext(ctx)

	var file models.File
	err := f.DB.QueryRowContext(ctx, getFileByID, fileID, userID).Scan(
		&file.ID,
		&file.UserID,
		&file.DirectoryID,
		&file.Name.Cipher,
		&file.Name.Hash,
		&file.StorageKey,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.File{}, ErrFileNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.GetByID").
			Int64("file_id", fileID).
			Msg("failed to query file by id")
		return models.File{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return file, nil
}

// GetByNameHash looks a file up among the siblings of directoryID by the
// deterministic hash of its name. Returns [ErrFileNotFound] when no row
// matches.
func (f *fileRepository) GetByNameHash(ctx context.Context, directoryID int64, nameHash string) (models.File, error) {
	log := logger.FromContext(ctx)

	var file models.File
	err := f.DB.QueryRowContext(ctx, getFileByNameHash, directoryID, nameHash).Scan(
		&file.ID,
		&file.UserID,
		&file.DirectoryID,
		&file.Name.Cipher,
		&file.Name.Hash,
		&file.StorageKey,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.File{}, ErrFileNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.GetByNameHash").
			Int64("directory_id", directoryID).
			Msg("failed to query file by name hash")
		return models.File{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return file, nil
}

// ListByDirectory returns the files of one directory, optionally narrowed to
// files carrying all of the given tags.
func (f *fileRepository) ListByDirectory(ctx context.Context, userID, directoryID int64, tagIDs []int64) ([]models.File, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFilesQuery(userID, directoryID, tagIDs)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.ListByDirectory").
			Int64("directory_id", directoryID).
			Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.ListByDirectory").
			Int64("directory_id", directoryID).
			Int("tags_count", len(tagIDs)).
			Msg("failed to query files")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.File, 0, 32)

	for rows.Next() {
		var file models.File

		scanErr := rows.Scan(
			&file.ID,
			&file.UserID,
			&file.DirectoryID,
			&file.Name.Cipher,
			&file.Name.Hash,
			&file.StorageKey,
			&file.CreatedAt,
			&file.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "fileRepository.ListByDirectory").
				Int64("directory_id", directoryID).
				Msg("failed to scan file row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		files = append(files, file)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "fileRepository.ListByDirectory").
			Int64("directory_id", directoryID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return files, nil
}

// buildListFilesQuery builds the directory listing dynamically: the tag
// filter joins the attachment table and requires every requested tag to be
// present.
func buildListFilesQuery(userID, directoryID int64, tagIDs []int64) (string, []any, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("f.id", "f.user_id", "f.directory_id", "f.name_cipher", "f.name_hash", "f.storage_key", "f.created_at", "f.updated_at").
		From("files f").
		Where(sq.Eq{"f.user_id": userID, "f.directory_id": directoryID}).
		OrderBy("f.id")

	if len(tagIDs) > 0 {
		builder = builder.
			Join("file_tags ft ON ft.file_id = f.id").
			Where(sq.Eq{"ft.tag_id": tagIDs}).
			GroupBy("f.id", "f.user_id", "f.directory_id", "f.name_cipher", "f.name_hash", "f.storage_key", "f.created_at", "f.updated_at").
			Having("COUNT(DISTINCT ft.tag_id) = ?", len(tagIDs))
	}

	return builder.ToSql()
}

// Rename replaces the name pair of a file. Both members are recomputed by the
// caller from the same plaintext; storage_key is deliberately untouched.
// Returns [ErrNameConflict] on a sibling hash collision and [ErrFileNotFound]
// when the row does not exist.
func (f *fileRepository) Rename(ctx context.Context, userID, fileID int64, name models.EncryptedField) error {
	log := logger.FromContext(ctx)

	res, err := f.DB.ExecContext(ctx, renameFile, name.Cipher, name.Hash, fileID, userID)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("func", "fileRepository.Rename").
				Int64("file_id", fileID).
				Msg("target file name already exists")
			return ErrNameConflict
		}

		log.Err(err).
			Str("func", "fileRepository.Rename").
			Int64("file_id", fileID).
			Msg("failed to rename file")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrFileNotFound
	}

	return nil
}

// TouchUpdatedAt sets the modification timestamp after a content save; the
// same instant travels in the change notification so reloading editors agree
// on what they fetched. Returns [ErrFileNotFound] when the row is gone.
func (f *fileRepository) TouchUpdatedAt(ctx context.Context, fileID int64, modifiedAt time.Time) error {
	log := logger.FromContext(ctx)

	res, err := f.DB.ExecContext(ctx, touchFileUpdatedAt, modifiedAt, fileID)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.TouchUpdatedAt").
			Int64("file_id", fileID).
			Msg("failed to update file timestamp")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrFileNotFound
	}

	return nil
}

// Delete removes a file row. Returns [ErrFileNotFound] when the row does not
// exist or belongs to another user.
func (f *fileRepository) Delete(ctx context.Context, userID, fileID int64) error {
	log := logger.FromContext(ctx)

	res, err := f.DB.ExecContext(ctx, deleteFile, fileID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "fileRepository.Delete").
			Int64("file_id", fileID).
			Msg("failed to delete file")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrFileNotFound
	}

	return nil
}
