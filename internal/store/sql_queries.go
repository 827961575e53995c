// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package store

const (
	createDirectory = `INSERT INTO directories (user_id, path_cipher, path_hash)
    VALUES ($1, $2, $3)
    RETURNING id, created_at;`

	getDirectoryByPathHash = `SELECT id, user_id, path_cipher, path_hash, created_at
    FROM directories
    WHERE user_id = $1 AND path_hash = $2;`

	listDirectories = `SELECT id, user_id, path_cipher, path_hash, created_at
    FROM directories
    WHERE user_id = $1
    ORDER BY id;`

	deleteDirectory = `DELETE FROM directories
    WHERE id = $1 AND user_id = $2;`

	createFile = `INSERT INTO files (user_id, directory_id, name_cipher, name_hash, storage_key)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, created_at, updated_at;`

	getFileByID = `SELECT id, user_id, directory_id, name_cipher, name_hash, storage_key, created_at, updated_at
    FROM files
    WHERE id = $1 AND user_id = $2;`

	getFileByNameHash = `SELECT id, user_id, directory_id, name_cipher, name_hash, storage_key, created_at, updated_at
    FROM files
    WHERE directory_id = $1 AND name_hash = $2;`

	renameFile = `UPDATE files
    SET name_cipher = $1, name_hash = $2
    WHERE id = $3 AND user_id = $4;`

	touchFileUpdatedAt = `UPDATE files
    SET updated_at = $1
    WHERE id = $2;`

	deleteFile = `DELETE FROM files
    WHERE id = $1 AND user_id = $2;`

	createTag = `INSERT INTO tags (user_id, name_cipher, name_hash)
    VALUES ($1, $2, $3)
    RETURNING id;`

	listTags = `SELECT id, user_id, name_cipher, name_hash
    FROM tags
    WHERE user_id = $1
    ORDER BY id;`

	attachTag = `INSERT INTO file_tags (file_id, tag_id)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING;`

	detachTag = `DELETE FROM file_tags
    WHERE file_id = $1 AND tag_id = $2;`

	getSizeHint = `SELECT value
    FROM blob_size_hints
    WHERE key = $1;`

	upsertSizeHint = `INSERT INTO blob_size_hints (key, value)
    VALUES ($1, $2)
    ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`

	deleteSizeHint = `DELETE FROM blob_size_hints
    WHERE key = $1;`
)
