package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

func cmdRefresh(ctx context.Context, notes service.ClientNotesService) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: opRefresh, ok: notes.Refresh(ctx)}
	}
}

func cmdAddNote(ctx context.Context, notes service.ClientNotesService, draft models.NoteDraft) tea.Cmd {
	return func() tea.Msg {
		_, ok := notes.AddNote(ctx, draft)
		return opDoneMsg{op: opCreate, ok: ok}
	}
}

func cmdSaveNote(ctx context.Context, notes service.ClientNotesService, id string, patch models.NotePatch) tea.Cmd {
	return func() tea.Msg {
		_, ok := notes.SaveNote(ctx, id, patch)
		return opDoneMsg{op: opSave, ok: ok}
	}
}

func cmdRemoveNote(ctx context.Context, notes service.ClientNotesService, id string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: opDelete, ok: notes.RemoveNote(ctx, id)}
	}
}

func cmdArchiveNote(ctx context.Context, notes service.ClientNotesService, id string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: opArchive, ok: notes.SetArchived(ctx, id, true)}
	}
}

func cmdSendLink(ctx context.Context, auth service.ClientAuthService, email string) tea.Cmd {
	return func() tea.Msg {
		return emailSentMsg{email: email, err: auth.SignInWithEmail(ctx, email)}
	}
}

func cmdStartOAuth(ctx context.Context, auth service.ClientAuthService, provider string) tea.Cmd {
	return func() tea.Msg {
		url, err := auth.SignInWithOAuth(ctx, provider)
		if err != nil {
			return oauthStartedMsg{err: err}
		}
		return oauthStartedMsg{url: url, copied: clipboardWrite(url) == nil}
	}
}

func cmdSignOut(ctx context.Context, auth service.ClientAuthService) tea.Cmd {
	return func() tea.Msg {
		return signOutDoneMsg{err: auth.SignOut(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboardWrite(text)}
	}
}

func cmdClearStatus(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
