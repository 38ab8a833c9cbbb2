package service

import (
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/utils"
)

// Services is the set of business services handed to the transport layer.
type Services struct {
	AuthService   AuthService
	UserService   UserService
	HealthService HealthService
}

// NewServices builds every service on top of storages. Auth and user
// services are wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := utils.NewBcryptHasher(cfg.App.PasswordHashCost)

	return &Services{
		AuthService:   NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, hasher, cfg.App, logger)),
		UserService:   NewUserValidationService().Wrap(NewUserService(storages.UserRepository, hasher, logger)),
		HealthService: NewHealthService(storages, logger),
	}
}
