package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

// errorStatuses is checked in order: auth errors wrap the gateway error, so
// the more specific sentinels come first.
var errorStatuses = []struct {
	target error
	status int
}{
	{adapter.ErrMissingVerifier, http.StatusConflict},
	{adapter.ErrNotConfigured, http.StatusServiceUnavailable},
	{adapter.ErrUnavailable, http.StatusBadGateway},
	{adapter.ErrRateLimited, http.StatusTooManyRequests},
	{adapter.ErrForbidden, http.StatusForbidden},
	{adapter.ErrUnauthorized, http.StatusUnauthorized},
	{adapter.ErrBadRequest, http.StatusBadRequest},
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrAuth, http.StatusUnauthorized},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// callbackMessage is the text shown on the failure page.
func callbackMessage(err error, description string) string {
	switch {
	case errors.Is(err, adapter.ErrMissingVerifier):
		return "This sign-in was not started by this client. Start it again from the terminal."
	case errors.Is(err, adapter.ErrNotConfigured):
		return "The notes backend is not configured."
	case errors.Is(err, adapter.ErrUnavailable):
		return "The auth server could not be reached. Try again in a moment."
	case description != "":
		return description
	default:
		return "The sign-in link is invalid or has expired."
	}
}
