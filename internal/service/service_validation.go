package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

// AuthValidationService validates credentials before they reach the wrapped
// AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

// NewAuthValidationService constructs the validating AuthServiceWrapper.
func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("error during signup validation: %w", err)
	}

	return v.inner.Signup(ctx, credentials)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("error during login validation: %w", err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// UserValidationService validates ids and request bodies before they reach
// the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

// NewUserValidationService constructs the validating UserServiceWrapper.
func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if err := v.validator.Validate(ctx, userID); err != nil {
		return models.User{}, err
	}

	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before saving: %w", err)
	}

	return v.inner.CreateUser(ctx, request)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, userID int64, request models.UpdateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, userID); err != nil {
		return models.User{}, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before update: %w", err)
	}

	return v.inner.UpdateUser(ctx, userID, request)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, userID int64) error {
	if err := v.validator.Validate(ctx, userID); err != nil {
		return err
	}

	return v.inner.DeleteUser(ctx, userID)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
