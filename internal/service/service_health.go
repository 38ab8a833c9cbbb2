package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
)

type healthService struct {
	pinger store.Pinger
	logger *logger.Logger
}

// NewHealthService constructs a HealthService that pings the database.
func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

// Check returns ErrStorageUnavailable when the database does not answer.
func (s *healthService) Check(ctx context.Context) error {
	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
