package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ekaraman/skyfare/internal/client/cli"
	"github.com/ekaraman/skyfare/internal/client/config"
	"github.com/ekaraman/skyfare/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := cli.NewApp(ctx, cfg, log)
	app.Run(ctx)
}
