// Package server wires configuration, storage, services and the REST and
// gRPC listeners into a runnable application with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"github.com/dmitrijs2005/gophtasks/internal/server/config"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophtasks/internal/server/rest"
	"github.com/dmitrijs2005/gophtasks/internal/server/services"

	gs "github.com/dmitrijs2005/gophtasks/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	rest        *rest.Server
	health      *gs.HealthServer
}

// NewApp connects to the store, applies migrations and builds the servers.
func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	m, err := repomanager.New(ctx, c.DatabaseDSN, c.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	es, err := services.NewExportService(ctx, m, c)
	if err != nil {
		_ = m.Close(ctx)
		return nil, fmt.Errorf("export init error: %w", err)
	}

	app := &App{
		config:      c,
		logger:      l,
		repomanager: m,
		rest:        rest.NewServer(c, l, services.NewAuthService(m, c), services.NewTaskService(m), es, m),
	}
	if c.GRPCAddr != "" {
		app.health = gs.NewHealthServer(c.GRPCAddr, l, m, c.HealthCheckInterval)
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

type runner interface {
	Run(ctx context.Context) error
}

func (app *App) start(ctx context.Context, cancelFunc context.CancelFunc, name string, r runner) {
	if err := r.Run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err)
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a signal arrives or a server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "rest", app.rest)
	}()

	if app.health != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.start(ctx, cancelFunc, "grpc", app.health)
		}()
	}

	wg.Wait()

	if err := app.repomanager.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "closing store", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
