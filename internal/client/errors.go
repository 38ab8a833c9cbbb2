package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong command usage")
	ErrNoAdapter      = errors.New("accounts adapter is required")
)
