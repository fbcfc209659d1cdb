// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SignInModel is the sign-in page. The first row is the magic-link email
// input, the following rows are the configured OAuth providers. Sign-in
// completes in the browser; the page leaves when the session changes.
type SignInModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	email     textinput.Model
	providers []string
	focus     int
	optional  bool

	submitting bool
	status     string
	errMsg     string
}

// NewSignInModel creates a [SignInModel]. With optional set the user may
// leave the page without signing in.
func NewSignInModel(ctx context.Context, auth service.ClientAuthService, providers []string, optional bool) *SignInModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	return &SignInModel{
		ctx:       ctx,
		auth:      auth,
		email:     email,
		providers: providers,
		optional:  optional,
	}
}

func (m *SignInModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignInModel) capturesInput() bool {
	return m.focus == 0
}

func (m *SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case emailSentMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Check your email for a sign-in link."
		return m, nil
	case oauthStartedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeAuthError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Open this URL in your browser to continue:\n" + msg.url
		if msg.copied {
			m.status += "\n(copied to clipboard)"
		}
		return m, nil
	case sessionChangedMsg:
		m.submitting = false
		m.status = ""
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.optional {
				return m, func() tea.Msg { return NavigateTo{Page: pageNotes} }
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab), keyMsg.Type == tea.KeyDown:
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.Type == tea.KeyUp:
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	if m.focus != 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return m, cmd
}

func (m *SignInModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	if m.focus > 0 {
		m.submitting = true
		m.errMsg = ""
		return cmdStartOAuth(m.ctx, m.auth, m.providers[m.focus-1])
	}

	email := strings.TrimSpace(m.email.Value())
	if email == "" {
		m.errMsg = "Email is required"
		return nil
	}

	m.submitting = true
	m.errMsg = ""
	return cmdSendLink(m.ctx, m.auth, email)
}

func (m *SignInModel) setFocus(focus int) {
	rows := len(m.providers) + 1
	m.focus = (focus + rows) % rows
	if m.focus == 0 {
		m.email.Focus()
	} else {
		m.email.Blur()
	}
}

func (m *SignInModel) View() string {
	var b strings.Builder
	b.WriteString("Sign in with a magic link or an OAuth provider.\n\n")

	b.WriteString(m.cursor(0))
	b.WriteString("Email │ ")
	b.WriteString(m.email.View())
	b.WriteString("\n")

	for i, p := range m.providers {
		b.WriteString(m.cursor(i + 1))
		b.WriteString("[Continue with ")
		b.WriteString(p)
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\nWorking...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "tab/↑/↓: move │ enter: submit"
	if m.optional {
		hotKeys += " │ esc: continue without signing in"
	}
	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *SignInModel) cursor(row int) string {
	if m.focus == row {
		return "> "
	}
	return "  "
}
