package validators

import "errors"

var (
	// ErrValidation is the root of every validation failure; the wrapped
	// message carries the field details.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrUnknownField     = errors.New("unknown field for validation")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
