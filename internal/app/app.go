// Package app assembles the HTTP router shared by the server binary and the
// black-box tests.
package app

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/georgemunganga/reqres-users/internal/database"
	"github.com/georgemunganga/reqres-users/internal/httpx"
	"github.com/georgemunganga/reqres-users/internal/modules/status"
	"github.com/georgemunganga/reqres-users/internal/modules/user"
)

const metricsNamespace = "users"

type Options struct {
	// Metrics mounts GET /metrics and instruments every route.
	Metrics bool
	// Now overrides the clock used for createdAt/updatedAt.
	Now func() time.Time
}

// New wires middleware, the user and status modules and the 404/405
// handlers onto a fresh router.
func New(db *sql.DB, log *slog.Logger, opts Options) *chi.Mux {
	if log == nil {
		log = slog.Default()
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(httpx.RequestID)
	router.Use(httpx.AccessLog(log))
	router.Use(middleware.Recoverer)

	if opts.Metrics {
		metrics := httpx.NewMetrics(metricsNamespace)
		router.Use(metrics.Middleware)
		router.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	router.NotFound(httpx.NotFound)
	router.MethodNotAllowed(httpx.MethodNotAllowed)

	// ── Status ──────────────────────────────────────────────
	ping := func(ctx context.Context) error { return database.Ping(ctx, db) }
	status.NewHandler(ping, log).RegisterRoutes(router)

	// ── Users ───────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService, log)
	if opts.Now != nil {
		userHandler.WithClock(opts.Now)
	}
	userHandler.RegisterRoutes(router)

	return router
}
