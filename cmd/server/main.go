package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/soccer-prophet/internal/config"
	"github.com/preston-bernstein/soccer-prophet/internal/logging"
	"github.com/preston-bernstein/soccer-prophet/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	_ = godotenv.Load()

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "soccer-prophet",
		Version: appVersion,
	})
	if cfgErr != nil {
		logging.Warn(logger, "invalid configuration, using defaults", "error", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "failed to build server", err)
		os.Exit(1)
	}
	srv.Run(ctx, stop)
}
