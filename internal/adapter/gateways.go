package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// Gateways bundles the gateways of one backend.
type Gateways struct {
	Notes NotesGateway
	Auth  GoTrueAuthGateway
}

// NewGateways builds the PostgREST and GoTrue gateways, or the disabled
// ones when cfg lacks the URL or key.
func NewGateways(cfg config.ClientRemote, storage SessionStorage, log *logger.Logger) (*Gateways, error) {
	if !cfg.Configured() {
		log.Warn().Msg("remote backend is not configured, running offline")
		return &Gateways{Notes: NewDisabledNotesGateway(), Auth: NewDisabledAuthGateway()}, nil
	}

	auth, err := NewGoTrueAuthGateway(cfg, storage, log)
	if err != nil {
		return nil, fmt.Errorf("build auth gateway: %w", err)
	}

	notes, err := NewPostgRESTNotesGateway(cfg, auth, log)
	if err != nil {
		return nil, fmt.Errorf("build notes gateway: %w", err)
	}

	return &Gateways{Notes: notes, Auth: auth}, nil
}
