package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so the two cannot be told apart by callers.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrStorageUnavailable = errors.New("storage is unavailable")
)
