package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/migrations"
	"github.com/sethvargo/go-retry"
)

// readRetries bounds how many times a read query is re-attempted after a
// retryable driver error.
const (
	readRetries      = 2
	readRetryBackoff = 50 * time.Millisecond
)

// DB is a *sql.DB bound to the driver it was opened with.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.DSN: a postgres:// or
// postgresql:// URL goes through pgx, any other non-empty DSN is a SQLite
// file DSN.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case cfg.DSN == "":
		return nil, ErrUnsupportedDSN
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies the embedded schema for the connected dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify returns the classification of err for the connected driver.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

// withReadRetry runs fn, re-running it while it fails with a retryable
// driver error. Only idempotent reads may go through here.
func (db *DB) withReadRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(readRetries, retry.NewConstant(readRetryBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}

// openDB opens and pings a database/sql handle for driverName.
func openDB(ctx context.Context, driverName, dsn string, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		log.Err(err).Str("driver", driverName).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", driverName).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	return conn, nil
}
