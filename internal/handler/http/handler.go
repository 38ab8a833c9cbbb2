package http

import (
	"time"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
)

// Handler serves the account REST API on top of the business services.
// All fields are set once in NewHandler and only read afterwards.
type Handler struct {
	services *service.Services

	cookie         cookieSettings
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds a Handler. The session cookie lifetime follows the token
// duration so both expire together.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cookie: cookieSettings{
			maxAge: cfg.App.TokenDuration,
			secure: cfg.App.CookieSecure,
		},
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
