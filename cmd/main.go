package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"vendor_verify/internal/application"
	"vendor_verify/internal/config"
	"vendor_verify/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load", logx.Error(err))
		os.Exit(1)
	}

	log := slog.New(logx.NewHandler(os.Stdout, cfg.App.LogFormat, cfg.App.LogLevel))
	slog.SetDefault(log)

	if err := application.Run(ctx, log, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic // exitAfterDefer
	}

	log.Info("application stopped")
}
