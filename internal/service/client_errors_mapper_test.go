package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

func TestMapGatewayError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "postgrest not found", err: fmt.Errorf("%w: 406", adapter.ErrNotFound), want: ErrNotFound},
		{name: "store not found", err: store.ErrNoteNotFound, want: ErrNotFound},
		{name: "bad request", err: adapter.ErrBadRequest, want: ErrValidation},
		{name: "rls", err: adapter.ErrForbidden, want: ErrValidation},
		{name: "conflict", err: adapter.ErrConflict, want: ErrValidation},
		{name: "pg check", err: fmt.Errorf("%w: %w", store.ErrNoteRejected, &pgconn.PgError{Code: "23514"}), want: ErrValidation},
		{name: "expired token", err: adapter.ErrUnauthorized, want: ErrAuth},
		{name: "transport", err: adapter.ErrUnavailable, want: ErrGateway},
		{name: "not configured", err: adapter.ErrNotConfigured, want: ErrGateway},
		{name: "already mapped", err: errTitleRequired, want: ErrValidation},
		{name: "unknown", err: errors.New("boom"), want: ErrGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapGatewayError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "original error stays in the chain")
		})
	}

	assert.NoError(t, mapGatewayError(nil))
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "title", err: errTitleRequired, want: MsgTitleRequired},
		{name: "blank tag", err: fmt.Errorf("%w: %w", ErrValidation, validators.ErrBlankTag), want: MsgBlankTag},
		{name: "unknown note", err: errUnknownNote, want: MsgNoteNotFound},
		{name: "remote not found", err: mapGatewayError(adapter.ErrNotFound), want: MsgNoteNotFound},
		{name: "offline", err: mapGatewayError(adapter.ErrUnavailable), want: MsgNetworkError},
		{name: "db offline", err: mapGatewayError(store.ErrDatabaseUnavailable), want: MsgNetworkError},
		{name: "disabled", err: mapGatewayError(adapter.ErrNotConfigured), want: MsgNotConfigured},
		{name: "expired", err: mapGatewayError(adapter.ErrUnauthorized), want: MsgSessionExpired},
		{name: "forbidden", err: mapGatewayError(adapter.ErrForbidden), want: MsgNotAllowed},
		{name: "other", err: mapGatewayError(adapter.ErrInternalServerError), want: MsgFailedToSave},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanize(tt.err, MsgFailedToSave))
		})
	}
}

func TestMapAuthError(t *testing.T) {
	assert.NoError(t, mapAuthError(nil))

	err := mapAuthError(adapter.ErrRateLimited)
	assert.ErrorIs(t, err, ErrAuth)
	assert.ErrorIs(t, err, adapter.ErrRateLimited)

	assert.Equal(t, err, mapAuthError(err), "already tagged errors are returned as is")
}
