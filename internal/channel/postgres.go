// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package channel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/models"
)

// PostgresChannel implements [Channel] over LISTEN/NOTIFY, which gives the
// exact delivery contract required here for free: notifications reach only
// sessions listening at commit time, are never persisted, and preserve order
// per channel.
//
// Publishes go through the shared pool (pg_notify). Listening requires a
// session of its own: one dedicated connection runs a WaitForNotification
// loop, and LISTEN/UNLISTEN statements are funneled to that same session by
// waking the loop, since a connection cannot execute commands while it waits.
type PostgresChannel struct {
	pool     *pgxpool.Pool
	conn     *pgx.Conn
	registry *registry
	logger   *logger.Logger

	ctx  context.Context
	stop context.CancelFunc
	done chan struct{}

	cmdMu   sync.Mutex
	pending []listenCmd
	wake    context.CancelFunc
}

// listenCmd is a LISTEN/UNLISTEN statement queued for the listener session.
type listenCmd struct {
	sql  string
	done chan error
}

// NewPostgresChannel opens a dedicated listener connection with dsn and
// starts the notification loop. pool is used for publishes only.
func NewPostgresChannel(ctx context.Context, dsn string, pool *pgxpool.Pool, log *logger.Logger) (*PostgresChannel, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect listener session: %w", err)
	}

	runCtx, stop := context.WithCancel(context.Background())
	p := &PostgresChannel{
		pool:     pool,
		conn:     conn,
		registry: newRegistry(),
		logger:   log,
		ctx:      runCtx,
		stop:     stop,
		done:     make(chan struct{}),
	}

	go p.run()
	return p, nil
}

// Close stops the notification loop and closes the listener session.
func (p *PostgresChannel) Close(ctx context.Context) error {
	p.stop()
	<-p.done
	return p.conn.Close(ctx)
}

// Publish implements [Channel]. The notification is emitted via pg_notify and
// forgotten: delivery happens only to sessions currently listening.
func (p *PostgresChannel) Publish(ctx context.Context, fileID int64, msg models.SyncMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal sync message: %w", err)
	}

	if _, err := p.pool.Exec(ctx, "SELECT pg_notify($1, $2)", ChannelName(fileID), string(payload)); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// Subscribe implements [Channel].
func (p *PostgresChannel) Subscribe(_ context.Context, fileID int64, fn func(models.SyncMessage)) (*Subscription, error) {
	name := ChannelName(fileID)

	id, first := p.registry.add(name, fn)
	if first {
		if err := p.execOnListener("LISTEN " + pgx.Identifier{name}.Sanitize()); err != nil {
			p.registry.remove(name, id)
			return nil, fmt.Errorf("listen on %q: %w", name, err)
		}
	}

	return &Subscription{cancel: func() {
		if last := p.registry.remove(name, id); last {
			// best effort: a dangling LISTEN only costs the session a
			// discarded notification
			if err := p.execOnListener("UNLISTEN " + pgx.Identifier{name}.Sanitize()); err != nil {
				p.logger.Warn().
					Err(err).
					Str("func", "PostgresChannel.Subscribe").
					Str("channel", name).
					Msg("unlisten failed")
			}
		}
	}}, nil
}

// execOnListener queues sql for the listener session and wakes the loop to
// run it.
func (p *PostgresChannel) execOnListener(sql string) error {
	done := make(chan error, 1)

	p.cmdMu.Lock()
	p.pending = append(p.pending, listenCmd{sql: sql, done: done})
	if p.wake != nil {
		p.wake()
	}
	p.cmdMu.Unlock()

	select {
	case err := <-done:
		return err
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// run owns the listener connection: it alternates between draining queued
// LISTEN/UNLISTEN statements and blocking in WaitForNotification until either
// a notification arrives or a queued statement wakes it.
func (p *PostgresChannel) run() {
	defer close(p.done)

	for {
		p.cmdMu.Lock()
		cmds := p.pending
		p.pending = nil
		waitCtx, cancel := context.WithCancel(p.ctx)
		p.wake = cancel
		p.cmdMu.Unlock()

		for _, cmd := range cmds {
			_, err := p.conn.Exec(p.ctx, cmd.sql)
			cmd.done <- err
		}

		notification, err := p.conn.WaitForNotification(waitCtx)
		cancel()

		switch {
		case p.ctx.Err() != nil:
			return
		case errors.Is(err, context.Canceled):
			// woken to run queued statements
			continue
		case err != nil:
			p.logger.Warn().
				Err(err).
				Str("func", "PostgresChannel.run").
				Msg("notification wait failed")
			time.Sleep(time.Second)
			continue
		}

		p.handle(notification)
	}
}

// handle decodes one notification payload and fans it out. A malformed
// payload is dropped with a warning; it cannot be retried and must not kill
// the loop.
func (p *PostgresChannel) handle(notification *pgconn.Notification) {
	var msg models.SyncMessage
	if err := json.Unmarshal([]byte(notification.Payload), &msg); err != nil {
		p.logger.Warn().
			Err(err).
			Str("func", "PostgresChannel.handle").
			Str("channel", notification.Channel).
			Msg("discarding malformed notification payload")
		return
	}

	p.registry.dispatch(notification.Channel, msg)
}
