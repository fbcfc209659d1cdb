// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// mapGatewayError translates a notes gateway error (PostgREST or direct
// Postgres) into the service taxonomy.
func mapGatewayError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrNotFound),
		errors.Is(err, ErrGateway), errors.Is(err, ErrAuth):
		return err

	case errors.Is(err, adapter.ErrNotFound), errors.Is(err, store.ErrNoteNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, store.ErrNoteRejected):
		return fmt.Errorf("%w: %w", ErrValidation, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}

	return fmt.Errorf("%w: %w", ErrGateway, err)
}

// mapAuthError tags an auth gateway error with ErrAuth. The gateway error
// is kept so callers can still match adapter sentinels.
func mapAuthError(err error) error {
	if err == nil || errors.Is(err, ErrAuth) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrAuth, err)
}
