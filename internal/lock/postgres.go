// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package lock

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cipherhold/cipherhold/internal/logger"
)

// PostgresLocker implements [Locker] on top of PostgreSQL session-level
// advisory locks, making the lock visible to every replica that shares the
// database.
//
// Each held lock pins one pooled connection: advisory locks belong to the
// session that took them, so the connection is checked out on acquire and
// returned to the pool only on release. The wait is bounded server-side with
// lock_timeout, so a contended acquire fails over to the (nil, nil) timeout
// result without any client-side polling.
type PostgresLocker struct {
	pool   *pgxpool.Pool
	logger *logger.Logger
}

// NewPostgresLocker constructs a [PostgresLocker] over the given pool.
// The pool must be sized with lock concurrency in mind: every concurrently
// held lock occupies a connection for its full duration.
func NewPostgresLocker(pool *pgxpool.Pool, log *logger.Logger) *PostgresLocker {
	return &PostgresLocker{
		pool:   pool,
		logger: log,
	}
}

// AcquireWrite implements [Locker].
func (l *PostgresLocker) AcquireWrite(ctx context.Context, name string, timeout time.Duration) (*Handle, error) {
	return l.acquire(ctx, name, timeout, false)
}

// AcquireRead implements [Locker].
func (l *PostgresLocker) AcquireRead(ctx context.Context, name string, timeout time.Duration) (*Handle, error) {
	return l.acquire(ctx, name, timeout, true)
}

func (l *PostgresLocker) acquire(ctx context.Context, name string, timeout time.Duration, shared bool) (*Handle, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire lock connection: %w", err)
	}

	// lock_timeout cannot be a bind parameter; the value is an integer we
	// computed ourselves, so the formatted SET is safe.
	if _, err := conn.Exec(ctx, fmt.Sprintf("SET lock_timeout = %d", timeout.Milliseconds())); err != nil {
		conn.Release()
		return nil, fmt.Errorf("set lock timeout: %w", err)
	}

	fn := "pg_advisory_lock"
	if shared {
		fn = "pg_advisory_lock_shared"
	}

	key := lockKey(name)
	if _, err := conn.Exec(ctx, "SELECT "+fn+"($1)", key); err != nil {
		if isLockTimeout(err) {
			l.logger.Debug().
				Str("func", "PostgresLocker.acquire").
				Str("lock_name", name).
				Bool("shared", shared).
				Dur("timeout", timeout).
				Msg("lock not acquired within timeout")
			conn.Release()
			return nil, nil
		}

		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock %q: %w", name, err)
	}

	release := func(releaseCtx context.Context) error {
		unlockFn := "pg_advisory_unlock"
		if shared {
			unlockFn = "pg_advisory_unlock_shared"
		}

		_, unlockErr := conn.Exec(releaseCtx, "SELECT "+unlockFn+"($1)", key)
		if unlockErr != nil {
			// The session may still hold the lock; closing the underlying
			// connection forces the server to drop it instead of leaking it
			// back into the pool.
			l.logger.Warn().
				Err(unlockErr).
				Str("func", "PostgresLocker.release").
				Str("lock_name", name).
				Msg("advisory unlock failed, closing lock session")
			_ = conn.Conn().Close(releaseCtx)
			conn.Release()
			return fmt.Errorf("release advisory lock %q: %w", name, unlockErr)
		}

		if _, err := conn.Exec(releaseCtx, "SET lock_timeout = 0"); err != nil {
			_ = conn.Conn().Close(releaseCtx)
		}
		conn.Release()
		return nil
	}

	return newHandle(release), nil
}

// isLockTimeout reports whether err is the server-side lock_timeout
// expiration (SQLSTATE 55P03).
func isLockTimeout(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.LockNotAvailable
	}
	return false
}

// lockKey folds a lock name into the signed 64-bit key space of the advisory
// lock functions. FNV-1a is stable across processes and Go versions, which is
// required for replicas to contend on the same key.
func lockKey(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(h.Sum64())
}
