// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the go-accounts HTTP API.
//
// The primary abstraction is [AccountsAdapter], which hides the REST transport
// from callers. [NewHTTPAccountsAdapter] is the resty-based implementation.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/accounts_adapter_mock.go -package=mock

// AccountsAdapter is a client session against the accounts API. It keeps the
// session token received from Signup or Login and sends it as a bearer token
// on every guarded request.
type AccountsAdapter interface {
	// SetToken stores the session token attached to guarded requests.
	SetToken(token string)

	// Token returns the current session token, or "" when none is held.
	Token() string

	// Signup creates an account and keeps the issued session token.
	Signup(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Login authenticates and keeps the issued session token.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Logout asks the server to clear the session cookie and forgets the
	// local token. Tokens are stateless, so an already copied token stays
	// valid until it expires.
	Logout(ctx context.Context) error

	// Me returns the user owning the current session.
	Me(ctx context.Context) (models.User, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	// Health reports whether the server and its database are reachable.
	Health(ctx context.Context) error
}
