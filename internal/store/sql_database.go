// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/migrations"
)

const (
	retryAttempts = 3
	retryBackoff  = 50 * time.Millisecond
)

// DB wraps the SQLite connection pool with an error classifier and a logger.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs fn until it succeeds, returns a non-retryable error, or
// the attempts run out. Only errors classified as [Retryable] are retried.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(retryAttempts, retry.NewConstant(retryBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Str("func", "DB.withRetry").Msg("transient sqlite error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// execWithRetry executes a DML statement through [DB.withRetry].
func (db *DB) execWithRetry(ctx context.Context, query string, args []any) (sql.Result, error) {
	var res sql.Result
	err := db.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		res, execErr = db.ExecContext(ctx, query, args...)
		return execErr
	})
	return res, err
}
