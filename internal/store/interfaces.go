package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NotesRepository reads and writes the notes table directly over SQL. Its
// method set matches adapter.NotesGateway so it can replace the PostgREST
// gateway when the client is given database credentials.
type NotesRepository interface {
	List(ctx context.Context, opts models.ListOptions) ([]models.Note, error)
	Get(ctx context.Context, id string, opts models.ListOptions) (models.Note, error)
	Create(ctx context.Context, draft models.NoteDraft, owner *string) (models.Note, error)
	Update(ctx context.Context, id string, patch models.NotePatch) (models.Note, error)
	SoftDelete(ctx context.Context, id string) error
	SetArchived(ctx context.Context, id string, archived bool) error
}

// SessionRepository keeps the signed-in session on the local machine.
// Load returns nil, nil when nothing is stored.
type SessionRepository interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
}
