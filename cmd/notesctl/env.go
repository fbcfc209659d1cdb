package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/client"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// env is what a command runs against.
type env struct {
	cfg   *config.ClientConfig
	notes service.ClientNotesService
	auth  service.ClientAuthService
	close func() error
}

type opener func(ctx context.Context, cfgPath string, log *logger.Logger) (*env, error)

// openEnv loads the configuration, opens storages, restores the session and
// returns the services bound to it.
func openEnv(ctx context.Context, cfgPath string, log *logger.Logger) (*env, error) {
	cfg, err := config.LoadClientConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storages: %w", err)
	}

	backend, err := client.NewBackend(cfg.Remote, storages, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}

	services := service.NewClientServices(backend.Notes, backend.Auth, cfg.Remote.RedirectURL, cfg.Auth.Providers, log)
	if err = services.AuthService.Activate(ctx); err != nil {
		log.Warn().Err(err).Msg("could not restore session")
	}

	return &env{
		cfg:   cfg,
		notes: services.NotesService,
		auth:  services.AuthService,
		close: func() error {
			services.Close()
			return storages.Close()
		},
	}, nil
}
