// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

func humanizeAuthError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrNotConfigured):
		return service.MsgNotConfigured
	case errors.Is(err, adapter.ErrUnavailable):
		return service.MsgNetworkError
	case errors.Is(err, adapter.ErrRateLimited):
		return "Too many sign-in attempts, try again later"
	case errors.Is(err, service.ErrValidation):
		return err.Error()
	default:
		return "Sign-in failed"
	}
}
