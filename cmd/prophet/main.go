package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/preston-bernstein/soccer-prophet/internal/client"
	"github.com/preston-bernstein/soccer-prophet/internal/config"
	"github.com/preston-bernstein/soccer-prophet/internal/logging"
	"github.com/preston-bernstein/soccer-prophet/internal/metrics"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_PROPHET_RUN") == "1" {
		return
	}

	_ = godotenv.Load()
	cfg := config.MustLoad()

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  "text",
		Service: "prophet",
		Version: appVersion,
		Output:  os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := client.NewClient(client.Config{
		BaseURL: cfg.Client.BaseURL,
		Timeout: cfg.Client.Timeout,
		Metrics: metrics.NewRecorder(),
		Logger:  logger,
	})

	s := newSession(sessionConfig{
		Loader:      loader,
		Logger:      logger,
		NotifyDelay: cfg.Client.NotifyDelay,
		Out:         os.Stdout,
		Color:       term.IsTerminal(int(os.Stdout.Fd())),
	})
	if err := s.run(ctx, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
