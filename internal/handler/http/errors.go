// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrUnauthorized is returned when a guarded request carries no usable
	// session token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidPathID is returned when the {id} path segment is not an integer.
	ErrInvalidPathID = errors.New("invalid user id in path")
)
