package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the command-line API client.
type ClientConfig struct {
	// Address is the base URL of the accounts server.
	// Env: ACCOUNTS_ADDRESS
	Address string `env:"ADDRESS"`

	// Token is a session token from a previous signup or login.
	// Env: ACCOUNTS_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds every HTTP request of the client.
	// Env: ACCOUNTS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogLevel is the minimum zerolog level emitted.
	// Env: ACCOUNTS_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

const (
	DefaultClientAddress        = "http://localhost:8080"
	DefaultClientRequestTimeout = 15 * time.Second
	DefaultClientLogLevel       = "error"
)

// ErrInvalidClientConfigs indicates an unusable client configuration.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

type clientEnv struct {
	Client ClientConfig `envPrefix:"ACCOUNTS_"`
}

// GetClientConfig merges defaults, ACCOUNTS_* environment variables and
// flags from args, in that order. The positional arguments left after the
// flags are returned as the command to run.
//
// Flags:
//
//	-a server base URL
//	-t session token
//	-timeout request timeout (e.g. "5s")
//	-log-level minimum log level
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &clientEnv{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagsCfg, command, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{
		Address:        DefaultClientAddress,
		RequestTimeout: DefaultClientRequestTimeout,
		LogLevel:       DefaultClientLogLevel,
	}
	for _, src := range []*ClientConfig{&envCfg.Client, flagsCfg} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if cfg.Address == "" {
		return nil, nil, fmt.Errorf("%w: server address is required", ErrInvalidClientConfigs)
	}
	if cfg.RequestTimeout < 0 {
		return nil, nil, fmt.Errorf("%w: request timeout must not be negative", ErrInvalidClientConfigs)
	}

	return cfg, command, nil
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("accounts-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Address, "a", "", "Server base URL")
	fs.StringVar(&cfg.Token, "t", "", "Session token")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	return cfg, fs.Args(), nil
}
