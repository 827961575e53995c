// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

// Package store holds the PostgreSQL-backed catalog repositories. Every
// name-like column is persisted as an EncryptedField pair: a ciphertext
// column for retrieval and a deterministic hash column that carries the
// unique indexes and answers all equality lookups — candidate rows are never
// decrypted to compare names.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx database/sql driver

	"github.com/cipherhold/cipherhold/internal/logger"
)

// DB wraps the catalog connection handed to every repository.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens and pings the catalog database.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// NewDB wraps an existing connection; used by tests with sqlmock.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: conn, logger: log}
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation. All hash-column indexes funnel through here to become
// [ErrNameConflict].
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}
