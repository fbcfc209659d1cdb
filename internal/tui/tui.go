package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configure the TUI.
type Options struct {
	// Providers are the OAuth providers offered on the sign-in page.
	Providers []string
	// AuthOptional lets the user skip the sign-in page.
	AuthOptional bool
	BuildInfo    models.AppBuildInfo
}

type TUI struct {
	notes service.ClientNotesService
	auth  service.ClientAuthService
	opts  Options

	logger *logger.Logger
}

func New(notes service.ClientNotesService, auth service.ClientAuthService, opts Options, logger *logger.Logger) *TUI {
	return &TUI{notes: notes, auth: auth, opts: opts, logger: logger}
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageSignIn: NewSignInModel(ctx, t.auth, t.opts.Providers, t.opts.AuthOptional),
		pageNotes:  newMainLoopModel(ctx, t.notes, t.auth),
	}
	return NewRootModel(t.auth, pages, startPage(t.auth, t.opts.AuthOptional), t.opts.AuthOptional, t.opts.BuildInfo)
}

// Run shows the UI until the user quits or ctx is cancelled. Service state
// changes reach the program through relays.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(t.newRootModel(ctx), tea.WithAltScreen(), tea.WithContext(ctx))

	notesRelay, sessionRelay := newRelay(), newRelay()
	unsubscribeNotes := t.notes.Subscribe(func(models.NotesState) { notesRelay.notify() })
	defer unsubscribeNotes()
	unsubscribeSession := t.auth.Subscribe(func(*models.Session) { sessionRelay.notify() })
	defer unsubscribeSession()

	go notesRelay.forward(ctx, p.Send, notesChangedMsg{})
	go sessionRelay.forward(ctx, p.Send, sessionChangedMsg{})

	t.logger.Info().Msg("starting TUI")
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Msg("TUI stopped by context")
		return nil
	}
	return err
}
