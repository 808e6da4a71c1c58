package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"mcal/config"
	_ "mcal/docs" // Swagger docs
	"mcal/pkg/log"
)

// @title       mcal API
// @description Calendars with recurring events, range expansion, iCalendar export and AI event suggestions.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	app := &cli.App{
		Name:  "mcal",
		Usage: "Calendar service with recurring events.",
		Flags: serveFlags(),
		// Running without a command starts the server.
		Action: serveAction,
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "mcal:", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and builds the logger shared by commands.
func bootstrap() (*config.Config, log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return cfg, logger, nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
