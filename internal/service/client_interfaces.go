package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientNotesService owns the in-memory notes collection of the client and
// mediates every change of it through an optimistic local update followed
// by reconciliation with the notes gateway, or a rollback when the gateway
// call fails.
//
// Operations never return gateway errors. A failure is reported by the
// boolean result and by the Err field of the next [models.NotesState].
type ClientNotesService interface {
	// Snapshot returns a deep copy of the current state.
	Snapshot() models.NotesState

	// Subscribe registers fn to be called with a fresh snapshot after every
	// state transition. The returned function removes the subscription.
	Subscribe(fn func(models.NotesState)) (unsubscribe func())

	// Refresh reloads the visible notes of the current owner. The
	// collection is replaced wholesale on success and left as is on failure.
	Refresh(ctx context.Context) bool

	// AddNote inserts a pending note, selects it and creates it remotely.
	// On success the pending entry is replaced by the confirmed note.
	AddNote(ctx context.Context, draft models.NoteDraft) (models.Note, bool)

	// SaveNote applies patch to the note in place and updates it remotely.
	SaveNote(ctx context.Context, id string, patch models.NotePatch) (models.Note, bool)

	// RemoveNote hides the note and soft-deletes it remotely.
	RemoveNote(ctx context.Context, id string) bool

	// SetArchived flags the note and, once confirmed, prunes every archived
	// note from the collection.
	SetArchived(ctx context.Context, id string, archived bool) bool

	// GetNote reads a single note from the gateway without touching the
	// collection. Archived notes are included.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// Select moves the selection to ref. Unknown refs are ignored.
	Select(ref models.NoteRef)
	SelectNext()
	SelectPrev()

	// DismissError clears the error message.
	DismissError()

	// SetOwner changes the owner scope. When the owner differs from the
	// current one the collection and the selection are cleared and true is
	// returned; the caller is expected to Refresh.
	SetOwner(owner *string) bool
}

// ClientAuthService tracks the signed-in session and exposes the sign-in
// and sign-out actions of the auth gateway. It keeps no optimistic state:
// the session changes only when the gateway reports a change.
type ClientAuthService interface {
	// Activate reads the current session once and subscribes to session
	// changes until Close. A failed read leaves the client signed out; the
	// error is returned for logging only.
	Activate(ctx context.Context) error

	// Close releases the session-change subscription. Safe to call twice.
	Close()

	Session() *models.Session
	User() *models.SessionUser
	// Initializing is true until the first session check completed.
	Initializing() bool
	// Configured reports whether an auth backend is available.
	Configured() bool

	// Subscribe registers fn for session changes. The returned function
	// removes the subscription.
	Subscribe(fn func(*models.Session)) (unsubscribe func())

	// SignInWithEmail sends a magic link to email.
	SignInWithEmail(ctx context.Context, email string) error

	// SignInWithOAuth starts a provider sign-in and returns the URL to open.
	SignInWithOAuth(ctx context.Context, provider string) (string, error)

	SignOut(ctx context.Context) error

	// CompleteSignIn finishes a sign-in with the parameters delivered to
	// the redirect target.
	CompleteSignIn(ctx context.Context, callback models.AuthCallback) error

	// RefreshSession renews the session when it expires within margin and
	// reports whether a refresh happened.
	RefreshSession(ctx context.Context, margin time.Duration) (bool, error)

	// CurrentUser asks the identity provider who the session belongs to.
	CurrentUser(ctx context.Context) (*models.SessionUser, error)
}

// ClientSessionRefreshJob periodically renews the access token before it
// expires.
type ClientSessionRefreshJob interface {
	// Start launches the background goroutine. It checks every interval,
	// defaulting to 30 seconds if interval is zero or negative, and renews
	// sessions expiring within margin. A running job is stopped first.
	Start(ctx context.Context, interval, margin time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
