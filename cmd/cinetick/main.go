// Command cinetick is a terminal client for the movie-ticket booking
// backend: log in, browse cinemas and schedules, pick seats, pay or cancel
// orders. All state beyond the persisted session lives on the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cinetick/cinetick/pkg/apiclient"
	"github.com/cinetick/cinetick/pkg/bookingapi"
	"github.com/cinetick/cinetick/pkg/config"
	"github.com/cinetick/cinetick/pkg/logger"
	"github.com/cinetick/cinetick/pkg/session"
	"github.com/cinetick/cinetick/pkg/toast"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cinetick:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(slog.String("app", "cinetick")),
	)

	stateDir, err := cfg.stateDir()
	if err != nil {
		return err
	}
	baseURL, err := resolveBaseURL(cfg, stateDir)
	if err != nil {
		return err
	}

	storage, err := session.NewFileStorage(stateDir)
	if err != nil {
		return err
	}
	store, err := session.NewStore(storage)
	if err != nil {
		return err
	}

	toasts := toast.New(os.Stdout)
	app := newApp(store, toasts, log, os.Stdin, os.Stdout)

	pipeline, err := apiclient.New(baseURL,
		apiclient.WithTimeout(cfg.Timeout),
		apiclient.WithLogger(log),
		apiclient.WithTokenSource(store),
		apiclient.WithUnauthorizedHandler(app.onSessionExpired),
	)
	if err != nil {
		return err
	}
	app.api = bookingapi.New(pipeline)

	log.LogAttrs(ctx, slog.LevelDebug, "starting",
		slog.String("base_url", baseURL),
		slog.String("state_dir", stateDir),
	)

	return app.nav.Run(ctx, "/")
}
