package validators

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/MKhiriev/go-accounts/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the login email of a user.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a user.
	FieldPassword = "password"

	// FieldUserID targets a user identifier taken from a request path.
	FieldUserID = "user_id"
)

// Length bounds. bcrypt ignores input past 72 bytes, so longer passwords are
// refused instead of silently truncated.
const (
	minEmailLength    = 3
	maxEmailLength    = 254
	minPasswordLength = 6
	maxPasswordLength = 72
)

var (
	emailRules    = []validation.Rule{validation.Required, validation.Length(minEmailLength, maxEmailLength), is.Email}
	passwordRules = []validation.Rule{validation.Required, validation.Length(minPasswordLength, maxPasswordLength)}
)

// UserValidator implements the Validator interface for the account request
// models: Credentials, CreateUserRequest, UpdateUserRequest and user ids.
//
// Every failure wraps [ErrValidation].
type UserValidator struct{}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of each model are accepted; an int64 is validated as a user id.
//
// Optional fields restrict validation to the named subset.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error

	switch value := obj.(type) {
	case models.Credentials:
		err = v.validateCredentials(value, fields...)
	case *models.Credentials:
		err = v.validateCredentials(*value, fields...)

	case models.CreateUserRequest:
		err = v.validateCreateUserRequest(value, fields...)
	case *models.CreateUserRequest:
		err = v.validateCreateUserRequest(*value, fields...)

	case models.UpdateUserRequest:
		err = v.validateUpdateUserRequest(value)
	case *models.UpdateUserRequest:
		err = v.validateUpdateUserRequest(*value)

	case int64:
		err = v.validateUserID(value)

	default:
		return ErrUnsupportedType
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

func (v *UserValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldEmail:
			rules = append(rules, validation.Field(&c.Email, emailRules...))
		case FieldPassword:
			rules = append(rules, validation.Field(&c.Password, passwordRules...))
		default:
			return ErrUnknownField
		}
	}

	return validation.ValidateStruct(&c, rules...)
}

func (v *UserValidator) validateCreateUserRequest(r models.CreateUserRequest, fields ...string) error {
	return v.validateCredentials(models.Credentials{Email: r.Email, Password: r.Secret()}, fields...)
}

func (v *UserValidator) validateUpdateUserRequest(r models.UpdateUserRequest) error {
	if r.Email == nil && r.Secret() == nil {
		return ErrNoFieldsToUpdate
	}

	password := r.Secret()
	return validation.Errors{
		FieldEmail:    validation.Validate(r.Email, validation.NilOrNotEmpty, validation.Length(minEmailLength, maxEmailLength), is.Email),
		FieldPassword: validation.Validate(password, validation.NilOrNotEmpty, validation.Length(minPasswordLength, maxPasswordLength)),
	}.Filter()
}

func (v *UserValidator) validateUserID(id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	return nil
}
