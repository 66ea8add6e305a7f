package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"training/cmd"
	"training/internal/adapters/in/cli"
	"training/internal/pkg/logger"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	l, err := logger.New(logger.Config{
		Level:  config.LogLevel,
		Format: config.LogFormat,
		Output: os.Stderr,
	})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}

	app, err := cmd.NewCompositionRoot(config, l)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := app.CLIDeps()
	deps.Out = os.Stdout

	if err = cli.NewRootCmd(deps).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
