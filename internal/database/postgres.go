// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-site-deploy/internal/logger"
)

// pingInterval is how long the readiness loop sleeps between failed pings.
const pingInterval = 2 * time.Second

// DB wraps a PostgreSQL connection used by the deployment hook.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// every entry carries the run ID attached by the caller.
type DB struct {
	*sql.DB
	logger     *logger.Logger
	classifier PingErrorClassifier
}

// Open dials the server identified by dsn using the pgx stdlib driver.
// The connection is established lazily; call WaitUntilReady to block until
// the server actually answers.
func Open(dsn string, log *logger.Logger) (*DB, error) {
	log.Debug().Msg("opening database connection")

	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "database.Open").Msg("error: opening connection")
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &DB{DB: conn, logger: log}, nil
}

// WaitUntilReady pings the server every pingInterval until it answers,
// the timeout elapses, or a ping fails with an error that retrying cannot
// fix. Authentication failures are reported as ErrAuthenticationFailed,
// an expired deadline as ErrDatabaseNotReady.
func (db *DB) WaitUntilReady(ctx context.Context, timeout time.Duration) error {
	log := logger.FromContext(ctx)

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	attempt := 0
	for {
		attempt++
		err := db.PingContext(waitCtx)
		if err == nil {
			log.Info().
				Int("attempts", attempt).
				Dur("elapsed", time.Since(started)).
				Msg("database is accepting connections")
			return nil
		}

		if db.classifier.Classify(err) == Fatal {
			log.Err(err).Str("func", "*DB.WaitUntilReady").Msg("error: database rejected connection")
			if isAuthenticationError(err) {
				return fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
			}
			return fmt.Errorf("database connection failed: %w", err)
		}

		log.Debug().
			Err(err).
			Int("attempt", attempt).
			Msg("database not ready yet, retrying")

		select {
		case <-waitCtx.Done():
			// the parent context ending (e.g. SIGINT) is not a timeout
			if ctxErr := ctx.Err(); ctxErr != nil {
				log.Err(ctxErr).
					Str("func", "*DB.WaitUntilReady").
					Dur("waited", time.Since(started)).
					Msg("error: database wait interrupted")
				return fmt.Errorf("database wait interrupted: %w", ctxErr)
			}
			log.Err(err).
				Str("func", "*DB.WaitUntilReady").
				Dur("waited", time.Since(started)).
				Msg("error: gave up waiting for database")
			return fmt.Errorf("%w after %s", ErrDatabaseNotReady, timeout)
		case <-time.After(pingInterval):
		}
	}
}
