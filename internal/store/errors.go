// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNameConflict is returned when a create or rename collides with an
	// existing row on the same hash within its uniqueness scope (sibling
	// file names, directory paths per user, tag names per user). A digest
	// collision between different plaintexts lands here too: within a scope
	// it is treated as a real conflict, not special-cased.
	ErrNameConflict = errors.New("name already exists")

	// ErrDirectoryNotFound is returned when a lookup or mutation targets a
	// directory row that does not exist.
	ErrDirectoryNotFound = errors.New("directory was not found")

	// ErrFileNotFound is returned when a lookup or mutation targets a file
	// row that does not exist.
	ErrFileNotFound = errors.New("file was not found")

	// ErrTagNotFound is returned when a lookup or mutation targets a tag row
	// that does not exist.
	ErrTagNotFound = errors.New("tag was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
