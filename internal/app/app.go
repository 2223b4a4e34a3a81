// Package app assembles the pipeline from configuration: connection pool,
// repositories, services and the HTTP surface.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/question-pipeline/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/question-pipeline/internal/adapter/postgres/activity"
	itemrepo "github.com/heartmarshall/question-pipeline/internal/adapter/postgres/item"
	noterepo "github.com/heartmarshall/question-pipeline/internal/adapter/postgres/note"
	"github.com/heartmarshall/question-pipeline/internal/auth"
	"github.com/heartmarshall/question-pipeline/internal/config"
	"github.com/heartmarshall/question-pipeline/internal/service/activity"
	"github.com/heartmarshall/question-pipeline/internal/service/revision"
	"github.com/heartmarshall/question-pipeline/internal/service/workflow"
	"github.com/heartmarshall/question-pipeline/internal/transport/middleware"
	"github.com/heartmarshall/question-pipeline/internal/transport/rest"
)

// App holds the wired services. Close releases the pool.
type App struct {
	cfg  *config.Config
	log  *slog.Logger
	pool *pgxpool.Pool

	Workflow *workflow.Service
	Revision *revision.Service
	Activity *activity.Service
}

// New connects to the database and wires every service.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, log: logger, pool: pool}
	a.wire()
	return a, nil
}

func (a *App) wire() {
	tx := postgres.NewTxManager(a.pool)
	items := itemrepo.New(a.pool)
	notes := noterepo.New(a.pool)
	entries := activityrepo.New(a.pool)

	a.Revision = revision.NewService(a.log, items, notes, entries, tx)
	a.Workflow = workflow.NewService(a.log, items, notes, a.Revision, entries, tx)
	a.Activity = activity.NewService(a.log, items, entries)
}

// Close releases the connection pool.
func (a *App) Close() {
	a.pool.Close()
}

// Handler builds the HTTP router over the wired services.
func (a *App) Handler() http.Handler {
	validator := auth.NewValidator(a.cfg.Auth.JWTSecret, a.cfg.Auth.JWTIssuer)

	return rest.NewRouter(rest.RouterConfig{
		Items:    rest.NewItemHandler(a.Workflow, a.log),
		Notes:    rest.NewNoteHandler(a.Revision, a.log),
		Activity: rest.NewActivityHandler(a.Activity, a.log),
		Health: rest.NewHealthHandler(BuildVersion(), 0, map[string]rest.Pinger{
			"database": a.pool,
		}),
		Auth:         middleware.Auth(validator, a.log),
		CORS:         a.cfg.CORS,
		MaxBodyBytes: a.cfg.Server.MaxBodyBytes,
		Logger:       a.log,
	})
}

// Serve runs the HTTP server, plus the claim reclaimer when a lease is
// configured, until ctx is cancelled. Shutdown waits for in-flight requests
// up to the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	addr := net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      a.Handler(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if a.cfg.Claims.LeaseEnabled() {
		g.Go(func() error {
			return a.Workflow.RunReclaimer(gctx, a.cfg.Claims.LeaseTTL, a.cfg.Claims.ReclaimInterval)
		})
	} else {
		a.log.Info("claim lease disabled, claims are held until released")
	}

	return g.Wait()
}

// Run connects, serves until ctx is cancelled and closes the pool.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting question pipeline",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

// OpenMigrator connects to the database and returns a Migrator with its
// release func.
func OpenMigrator(ctx context.Context, cfg config.DatabaseConfig) (*postgres.Migrator, func(), error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	db := stdlib.OpenDBFromPool(pool)

	closeAll := func() {
		_ = db.Close()
		pool.Close()
	}

	m, err := postgres.NewMigrator(db)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	return m, closeAll, nil
}
