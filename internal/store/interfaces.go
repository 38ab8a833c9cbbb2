//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

// UserRepository is the identity store: persistence of user records.
//
// Lookups that match nothing return [ErrUserNotFound]; writes that would
// duplicate an email return [ErrEmailAlreadyExists]. Implementations must be
// safe for concurrent use.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// ErrorClassificator maps driver-specific errors onto [ErrorClassification]
// values so repositories stay driver-agnostic.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Pinger checks that the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
