//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,UserServiceWrapper

package service

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

// AuthService runs the signup and login flows and issues and verifies
// session tokens.
type AuthService interface {
	Signup(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService is CRUD over user records. Passwords arrive in plaintext and
// are hashed before they reach the store.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, request models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// HealthService reports whether the service's dependencies are reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper defines middleware composition for UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
