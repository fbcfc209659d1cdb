// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the gateways the notes client uses to reach its
// hosted backend: a notes data gateway over PostgREST and an auth gateway
// over GoTrue, plus disabled stand-ins used when no backend is configured.
//
// Transport failures are mapped onto the sentinel errors of this package by
// mapHTTPError so callers can use [errors.Is] regardless of the transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotesGateway is the remote notes table. Every method performs exactly one
// round trip and returns server-confirmed records.
type NotesGateway interface {
	// List returns the notes matching opts ordered by updated_at
	// descending. By default archived and deleted notes are excluded.
	List(ctx context.Context, opts models.ListOptions) ([]models.Note, error)

	// Get returns one note. Notes hidden by opts are reported as
	// [ErrNotFound].
	Get(ctx context.Context, id string, opts models.ListOptions) (models.Note, error)

	// Create inserts a note owned by owner (nil for single-user mode) with
	// both timestamps set to now, and returns the stored record.
	Create(ctx context.Context, draft models.NoteDraft, owner *string) (models.Note, error)

	// Update applies patch, refreshes updated_at and returns the stored
	// record.
	Update(ctx context.Context, id string, patch models.NotePatch) (models.Note, error)

	// SoftDelete flags the note as deleted.
	SoftDelete(ctx context.Context, id string) error

	// SetArchived sets the archived flag.
	SetArchived(ctx context.Context, id string, archived bool) error
}

// AuthGateway is the remote auth service. It owns the current session and
// reports every change of it to subscribers.
type AuthGateway interface {
	// GetSession returns the current session, restoring a persisted one on
	// first use and refreshing it when expired. Nil when signed out.
	GetSession(ctx context.Context) (*models.Session, error)

	// Subscribe registers fn for session changes until the returned function
	// is called.
	Subscribe(fn func(event models.AuthEvent, session *models.Session)) (unsubscribe func())

	// SignInWithEmail sends a magic link that returns to redirectTo.
	SignInWithEmail(ctx context.Context, email, redirectTo string) error

	// SignInWithOAuth prepares a provider sign-in and returns the URL the
	// user has to open.
	SignInWithOAuth(ctx context.Context, provider, redirectTo string) (authURL string, err error)

	// SignOut ends the current session.
	SignOut(ctx context.Context) error

	// ExchangeCode completes a PKCE sign-in with the code delivered to the
	// redirect target.
	ExchangeCode(ctx context.Context, code string) (*models.Session, error)

	// VerifyMagicLink completes a magic-link sign-in verified by token hash.
	VerifyMagicLink(ctx context.Context, tokenHash, linkType string) (*models.Session, error)

	// RefreshSession trades the refresh token for a new session.
	RefreshSession(ctx context.Context) (*models.Session, error)

	// GetUser asks the server who the current access token belongs to.
	GetUser(ctx context.Context) (*models.SessionUser, error)

	// Configured reports whether a backend is reachable at all.
	Configured() bool
}

// SessionStorage persists the signed-in session between runs.
type SessionStorage interface {
	// Load returns the stored session or nil when there is none.
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
}

// TokenSource yields the access token to authorize data requests with.
// An empty token means anonymous access with the API key.
type TokenSource interface {
	AccessToken() string
}
