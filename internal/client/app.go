// Package client assembles the offline-first client runtime: local store,
// remote adapter, connectivity monitor, replay trigger, and push channel.
package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/stefpopov/go-wine-cellar/internal/adapter"
	"github.com/stefpopov/go-wine-cellar/internal/config"
	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/netmon"
	"github.com/stefpopov/go-wine-cellar/internal/push"
	"github.com/stefpopov/go-wine-cellar/internal/service"
	"github.com/stefpopov/go-wine-cellar/internal/store"
	"github.com/stefpopov/go-wine-cellar/internal/workers"
)

// App owns every long-lived client component. Construction wires them
// explicitly; Run drives them until a stop signal arrives.
type App struct {
	cellar  service.CellarService
	monitor *netmon.Monitor
	trigger *workers.SyncTrigger
	pusher  *push.Client
	workers *workers.Workers
	db      *store.ClientDB
	logger  *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectSQLite(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	recordStore := store.NewRecordStore(db, log)

	remote := adapter.NewHTTPRemoteStore(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)

	monitor, err := netmon.NewMonitor(cfg.Adapter.BaseURL, cfg.Netmon, log)
	if err != nil {
		return nil, fmt.Errorf("create connectivity monitor: %w", err)
	}

	replayer := service.NewReplayService(recordStore, remote, log)
	trigger := workers.NewSyncTrigger(replayer, monitor, workers.SyncTriggerConfig{
		InitialBackoff: cfg.Workers.InitialBackoff,
		MaxBackoff:     cfg.Workers.MaxBackoff,
	}, log)

	cellar := service.NewCellarService(recordStore, remote, monitor, trigger, log)

	pusher := push.NewClient(remote.WSEndpoint(), recordStore, push.ClientConfig{
		PingInterval:          cfg.Push.PingInterval,
		InitialReconnectDelay: cfg.Push.InitialReconnectDelay,
		MaxReconnectDelay:     cfg.Push.MaxReconnectDelay,
	}, log)

	return &App{
		cellar:  cellar,
		monitor: monitor,
		trigger: trigger,
		pusher:  pusher,
		workers: workers.NewWorkers(trigger, pusher),
		db:      db,
		logger:  log,
	}, nil
}

// Cellar exposes the user-facing sync engine surface for embedding callers.
func (a *App) Cellar() service.CellarService {
	return a.cellar
}

// Run starts the background workers and blocks until a stop signal arrives.
// Any mutations still pending at shutdown survive in the local database and
// replay on the next start.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go a.monitor.Run(ctx)
	a.workers.Run(ctx)

	// a regained connection drains whatever queued up while offline
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-a.monitor.Reachable():
				a.trigger.Schedule()
			}
		}
	}()

	// anything left over from the previous run is replayed right away
	a.trigger.Schedule()

	<-ctx.Done()
	a.workers.Wait()

	if err := a.db.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("error closing local database")
	}
	a.logger.Info().Msg("client stopped gracefully")

	return nil
}
