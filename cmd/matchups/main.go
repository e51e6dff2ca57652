package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/GabeGustafson/dota-matchups-CLI/internal/app"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/config"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prompt, err := app.NewPrompt(cfg, os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	if err := prompt.Run(ctx); err != nil {
		logger.Error("command loop failed", "error", err)
		os.Exit(1)
	}
}
