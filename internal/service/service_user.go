package service

import (
	"context"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         PasswordHasher
	logger         *logger.Logger
}

// NewUserService constructs a UserService on top of userRepository.
func NewUserService(userRepository store.UserRepository, hasher PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

// CreateUser hashes the supplied secret and stores a new user.
func (s *userService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	passwordHash, err := s.hasher.Hash(request.Secret())
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	return s.userRepository.CreateUser(ctx, models.User{Email: request.Email, PasswordHash: passwordHash})
}

// UpdateUser applies the supplied fields to the user. A new password is
// hashed before it is stored.
func (s *userService) UpdateUser(ctx context.Context, userID int64, request models.UpdateUserRequest) (models.User, error) {
	update := models.UserUpdate{UserID: userID, Email: request.Email}

	if secret := request.Secret(); secret != nil {
		passwordHash, err := s.hasher.Hash(*secret)
		if err != nil {
			logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("password hashing failed")
			return models.User{}, err
		}
		update.PasswordHash = &passwordHash
	}

	return s.userRepository.UpdateUser(ctx, update)
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepository.DeleteUser(ctx, userID)
}
