package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/server"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	tui      *tui.TUI

	logger *logger.Logger
}

// Backend holds the notes and auth gateways the services run against.
type Backend struct {
	Notes adapter.NotesGateway
	Auth  adapter.AuthGateway
}

// NewBackend picks the notes transport: the Postgres repository when
// storages opened one, PostgREST otherwise.
func NewBackend(cfg config.ClientRemote, storages *store.ClientStorages, log *logger.Logger) (Backend, error) {
	var sessions adapter.SessionStorage
	if storages.Session != nil {
		sessions = storages.Session
	}

	gateways, err := adapter.NewGateways(cfg, sessions, log)
	if err != nil {
		return Backend{}, fmt.Errorf("build gateways: %w", err)
	}

	backend := Backend{Notes: gateways.Notes, Auth: gateways.Auth}
	if storages.Notes != nil {
		log.Info().Msg("notes are read from Postgres directly")
		backend.Notes = storages.Notes
	}
	return backend, nil
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	backend, err := NewBackend(cfg.Remote, storages, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}

	services := service.NewClientServices(backend.Notes, backend.Auth, cfg.Remote.RedirectURL, cfg.Auth.Providers, log)

	appInfo, err := service.NewAppInfoService(buildInfo, log)
	if err != nil {
		services.Close()
		_ = storages.Close()
		return nil, err
	}

	jobs := []workers.Worker{workers.NewRefreshWorker(services.RefreshJob, cfg.Workers)}
	if listener, err := NewCallbackListener(services.AuthService, appInfo, cfg.Auth, log); err != nil {
		log.Warn().Err(err).Msg("redirect listener disabled, sign-in links will not complete here")
	} else {
		jobs = append(jobs, listener)
	}

	ui := tui.New(services.NotesService, services.AuthService, tui.Options{
		Providers:    cfg.Auth.Providers,
		AuthOptional: cfg.Auth.Optional || !cfg.Remote.Configured(),
		BuildInfo:    buildInfo,
	}, log)

	return &App{
		storages: storages,
		services: services,
		workers:  workers.NewWorkers(log, jobs...),
		tui:      ui,
		logger:   log,
	}, nil
}

// NewCallbackListener builds the redirect listener that completes sign-in
// links. It fails when no callback address is configured.
func NewCallbackListener(auth service.ClientAuthService, appInfo service.AppInfoService, cfg config.ClientAuth, log *logger.Logger) (server.Server, error) {
	handlers, err := handler.NewHandlers(auth, appInfo, cfg, log)
	if err != nil {
		return nil, err
	}
	return server.NewServer(handlers, cfg, log)
}

// Run activates the auth session, starts the background workers and runs
// the TUI until the user quits or the process receives a stop signal.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := a.services.AuthService.Activate(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("could not restore session")
	}

	if err := a.workers.Start(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("some workers did not start")
	}
	defer a.workers.Stop()

	if err := a.tui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (a *App) Close() error {
	a.services.Close()
	return a.storages.Close()
}
