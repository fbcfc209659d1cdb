package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	loadSession = `SELECT payload, sealed FROM auth_session WHERE id = 1;`

	saveSession = `INSERT INTO auth_session (id, payload, sealed, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, sealed = excluded.sealed, updated_at = excluded.updated_at;`

	clearSession = `DELETE FROM auth_session WHERE id = 1;`
)

type sessionRepository struct {
	db     *DB
	sealer crypto.Sealer
	now    func() time.Time
	logger *logger.Logger
}

// NewSessionRepository stores the session as JSON in a single-row table.
// When sealer is non-nil the payload is sealed before it is written.
func NewSessionRepository(db *DB, sealer crypto.Sealer, log *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, sealer: sealer, now: time.Now, logger: log}
}

func (r *sessionRepository) Load(ctx context.Context) (*models.Session, error) {
	var (
		payload string
		sealed  bool
	)

	err := r.db.QueryRowContext(ctx, loadSession).Scan(&payload, &sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Load").Msg("error reading stored session")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	raw := []byte(payload)
	if sealed {
		if r.sealer == nil {
			return nil, ErrSessionSealed
		}
		if raw, err = r.sealer.Open(payload); err != nil {
			r.logger.Err(err).Str("func", "sessionRepository.Load").Msg("error opening stored session")
			return nil, err
		}
	}

	var session models.Session
	if err = json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("error decoding stored session: %w", err)
	}

	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session *models.Session) error {
	if session == nil {
		return r.Clear(ctx)
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	payload := string(raw)
	sealed := r.sealer != nil
	if sealed {
		if payload, err = r.sealer.Seal(raw); err != nil {
			return fmt.Errorf("error sealing session: %w", err)
		}
	}

	if _, err = r.db.ExecContext(ctx, saveSession, payload, sealed, r.now().UTC().Format(time.RFC3339)); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Save").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearSession); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Clear").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
