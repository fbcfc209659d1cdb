package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// Session is the local SQLite store for the signed-in session.
	Session SessionRepository

	// Notes talks to Postgres directly. Nil unless the remote driver is
	// config.DriverPostgres.
	Notes NotesRepository

	closers []func() error
}

// NewClientStorages opens the local session database, runs its
// migrations and, when the postgres driver is selected, connects to the
// notes database too.
//
// The session payload is sealed when cfg.Storage.Session.Key is set.
func NewClientStorages(ctx context.Context, cfg config.ClientConfig, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	storages := &ClientStorages{}
	if err := storages.openSession(ctx, cfg.Storage.Session, log); err != nil {
		return nil, err
	}

	if cfg.Remote.Driver != config.DriverPostgres {
		return storages, nil
	}

	notesDB, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}
	if err = notesDB.Migrate(); err != nil {
		_ = notesDB.Close()
		_ = storages.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	storages.Notes = NewNotesRepository(notesDB, cfg.Remote.Table, log)
	storages.closers = append(storages.closers, notesDB.Close)

	return storages, nil
}

// openSession leaves Session nil when no DSN is configured.
func (s *ClientStorages) openSession(ctx context.Context, cfg config.ClientSessionStorage, log *logger.Logger) error {
	if cfg.DSN == "" {
		log.Warn().Msg("session storage is disabled, sign-in will not persist")
		return nil
	}

	sessionDB, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("sqlite connection error: %w", err)
	}
	if err = sessionDB.Migrate(); err != nil {
		_ = sessionDB.Close()
		return fmt.Errorf("migration failed: %w", err)
	}

	var sealer crypto.Sealer
	if cfg.Key != "" {
		if sealer, err = crypto.NewSealer(cfg.Key); err != nil {
			_ = sessionDB.Close()
			return err
		}
	}

	s.Session = NewSessionRepository(sessionDB, sealer, log)
	s.closers = append(s.closers, sessionDB.Close)
	return nil
}

// Close closes every opened database.
func (s *ClientStorages) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}
