package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
)

// Storages groups every repository the services depend on together with
// the connection they share.
type Storages struct {
	UserRepository UserRepository
	DB             *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		DB:             db,
	}, nil
}

// Ping reports whether the underlying database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
