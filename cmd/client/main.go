package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-accounts/internal/adapter"
	"github.com/MKhiriev/go-accounts/internal/client"
	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
)

func main() {
	cfg, command, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, client.Usage)
		os.Exit(2)
	}

	log := logger.NewLogger("go-accounts-client", cfg.LogLevel)
	log.Logger = log.Output(os.Stderr)

	accounts, err := adapter.NewHTTPAccountsAdapter(cfg.Address, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create accounts adapter")
	}
	if cfg.Token != "" {
		accounts.SetToken(cfg.Token)
	}

	app, err := client.NewApp(accounts, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, command); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, client.Usage)
			stop()
			os.Exit(2)
		}
		stop()
		os.Exit(1)
	}
}
