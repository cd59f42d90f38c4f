package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eringen/cmsconsole"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("cmsconsole %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// runServe starts the console and blocks until SIGINT or SIGTERM.
func runServe() error {
	cfg := cmsconsole.LoadConfig()
	logger := cmsconsole.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	app := cmsconsole.New(cfg, cmsconsole.WithLogger(logger))
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("close console", slog.String("error", err.Error()))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- app.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return <-errCh
}

func printUsage() {
	fmt.Println(`cmsconsole - Admin console for a content-management API

Usage:
  cmsconsole <command>

Commands:
  serve         Start the console (configured from the environment)
  version       Print the cmsconsole version
  help          Show this help message

Environment:
  API_BASE_URL     Root of the CMS API (required)
  API_KEY          Sent as x-api-key on every CMS call
  SESSION_SECRET   Session cookie secret (required)
  ADDR             Listen address (default :3000)
  COOKIE_SECURE    Set true behind HTTPS
  METRICS_TOKEN    Bearer token for /metrics (endpoint off when unset)
  LOG_LEVEL        debug, info, warn or error

Examples:
  cmsconsole serve
  API_BASE_URL=https://cms.example.com SESSION_SECRET=change-me cmsconsole serve`)
}
