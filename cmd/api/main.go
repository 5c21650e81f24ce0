package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/reqres-users/internal/app"
	"github.com/georgemunganga/reqres-users/internal/config"
	"github.com/georgemunganga/reqres-users/internal/database"
	"github.com/georgemunganga/reqres-users/internal/logging"
	"github.com/georgemunganga/reqres-users/internal/modules/user"
)

func main() {
	envErr := config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		logging.New("users-api", slog.LevelInfo, "json").Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logging.New("users-api", cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Warn("could not read .env file", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("api server failed", "error", err)
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the listener fails. Every resource it
// opens is released before it returns.
func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	db, err := database.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()
	log.Info("connected to database", "driver", cfg.DBDriver)

	if err := database.EnsureSchema(ctx, db, cfg.DBDriver); err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}
	if cfg.SeedUsers {
		if _, err := user.Seed(ctx, user.NewPostgresRepository(db), log); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	router := app.New(db, log, app.Options{Metrics: cfg.MetricsEnabled})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errorCh := make(chan error, 1)
	go func() {
		log.Info("api server starting", "addr", cfg.Addr)
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		log.Info("api server stopped")
		return nil
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}
}
