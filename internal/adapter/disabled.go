package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// disabledNotesGateway stands in when no backend is configured.
type disabledNotesGateway struct{}

// NewDisabledNotesGateway returns a [NotesGateway] failing every call with
// [ErrNotConfigured].
func NewDisabledNotesGateway() NotesGateway {
	return disabledNotesGateway{}
}

func (disabledNotesGateway) List(context.Context, models.ListOptions) ([]models.Note, error) {
	return nil, ErrNotConfigured
}

func (disabledNotesGateway) Get(context.Context, string, models.ListOptions) (models.Note, error) {
	return models.Note{}, ErrNotConfigured
}

func (disabledNotesGateway) Create(context.Context, models.NoteDraft, *string) (models.Note, error) {
	return models.Note{}, ErrNotConfigured
}

func (disabledNotesGateway) Update(context.Context, string, models.NotePatch) (models.Note, error) {
	return models.Note{}, ErrNotConfigured
}

func (disabledNotesGateway) SoftDelete(context.Context, string) error { return ErrNotConfigured }

func (disabledNotesGateway) SetArchived(context.Context, string, bool) error {
	return ErrNotConfigured
}

// disabledAuthGateway reports nobody signed in. Signing out is a no-op,
// starting a sign-in fails with [ErrNotConfigured].
type disabledAuthGateway struct{}

// NewDisabledAuthGateway returns the offline [GoTrueAuthGateway].
func NewDisabledAuthGateway() GoTrueAuthGateway {
	return disabledAuthGateway{}
}

func (disabledAuthGateway) GetSession(context.Context) (*models.Session, error) { return nil, nil }

func (disabledAuthGateway) Subscribe(func(models.AuthEvent, *models.Session)) func() {
	return func() {}
}

func (disabledAuthGateway) SignInWithEmail(context.Context, string, string) error {
	return ErrNotConfigured
}

func (disabledAuthGateway) SignInWithOAuth(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

func (disabledAuthGateway) SignOut(context.Context) error { return nil }

func (disabledAuthGateway) ExchangeCode(context.Context, string) (*models.Session, error) {
	return nil, ErrNotConfigured
}

func (disabledAuthGateway) VerifyMagicLink(context.Context, string, string) (*models.Session, error) {
	return nil, ErrNotConfigured
}

func (disabledAuthGateway) RefreshSession(context.Context) (*models.Session, error) {
	return nil, ErrNotConfigured
}

func (disabledAuthGateway) GetUser(context.Context) (*models.SessionUser, error) {
	return nil, ErrNotConfigured
}

func (disabledAuthGateway) Configured() bool   { return false }
func (disabledAuthGateway) AccessToken() string { return "" }
