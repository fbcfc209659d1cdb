package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loopMode int

const (
	modeList loopMode = iota
	modeSearch
	modeEdit
	modeConfirmDelete
)

// newNoteTitle is the title of notes created from the list.
const newNoteTitle = "Untitled"

// mainLoopModel is the notes page: top bar, error banner, search, list
// with a preview of the selected note, the editor and the delete prompt.
type mainLoopModel struct {
	ctx   context.Context
	notes service.ClientNotesService
	auth  service.ClientAuthService

	state  models.NotesState
	mode   loopMode
	search textinput.Model
	editor editorModel
	prompt confirmModel

	// openCreated opens the editor once the note created from "n" is
	// confirmed.
	openCreated bool

	status    string
	statusSeq int
	width     int
}

func newMainLoopModel(ctx context.Context, notes service.ClientNotesService, auth service.ClientAuthService) *mainLoopModel {
	search := textinput.New()
	search.Placeholder = "Search notes..."
	search.Prompt = "/ "
	search.Width = 40

	return &mainLoopModel{
		ctx:    ctx,
		notes:  notes,
		auth:   auth,
		state:  notes.Snapshot(),
		search: search,
		width:  80,
	}
}

func (m *mainLoopModel) Init() tea.Cmd {
	return cmdRefresh(m.ctx, m.notes)
}

// capturesInput reports whether keystrokes go to a text field.
func (m *mainLoopModel) capturesInput() bool {
	return m.mode == modeSearch || m.mode == modeEdit
}

func (m *mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor.setWidth(msg.Width)
		return m, nil
	case notesChangedMsg:
		m.state = m.notes.Snapshot()
		m.followSelection()
		return m, nil
	case sessionChangedMsg:
		if m.auth.Session() != nil {
			return m, cmdRefresh(m.ctx, m.notes)
		}
		m.mode = modeList
		m.state = m.notes.Snapshot()
		return m, nil
	case opDoneMsg:
		return m.handleOpDone(msg)
	case copiedMsg:
		if msg.err != nil {
			return m, m.setStatus("Copy failed: " + msg.err.Error())
		}
		return m, m.setStatus("Copied to clipboard")
	case signOutDoneMsg:
		if msg.err != nil {
			return m, m.setStatus(humanizeAuthError(msg.err))
		}
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	switch m.mode {
	case modeSearch:
		return m.updateSearch(msg)
	case modeEdit:
		return m.updateEditing(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.updateList(keyMsg)
}

func (m *mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.move(-1)
	case key.Matches(msg, keys.down):
		m.move(1)
	case key.Matches(msg, keys.search):
		m.mode = modeSearch
		return m, m.search.Focus()
	case key.Matches(msg, keys.esc):
		m.search.SetValue("")
	case key.Matches(msg, keys.newNote):
		m.openCreated = true
		return m, cmdAddNote(m.ctx, m.notes, models.NoteDraft{Title: newNoteTitle, Tags: []string{}})
	case key.Matches(msg, keys.edit):
		n, ok := m.selectedConfirmed()
		if !ok {
			return m, nil
		}
		m.editor = newEditorModel(n, m.width)
		m.mode = modeEdit
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		n, ok := m.selectedConfirmed()
		if !ok {
			return m, nil
		}
		m.prompt = confirmModel{id: n.Ref.ID(), title: n.Note.DisplayTitle()}
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.archive):
		n, ok := m.selectedConfirmed()
		if !ok {
			return m, nil
		}
		return m, cmdArchiveNote(m.ctx, m.notes, n.Ref.ID())
	case key.Matches(msg, keys.copy):
		n, ok := m.state.SelectedNote()
		if !ok {
			return m, nil
		}
		return m, cmdCopy(n.Note.Content)
	case key.Matches(msg, keys.refresh):
		return m, cmdRefresh(m.ctx, m.notes)
	case key.Matches(msg, keys.dismiss):
		m.notes.DismissError()
		m.state = m.notes.Snapshot()
	case key.Matches(msg, keys.signIn):
		if m.auth.Configured() && m.auth.Session() == nil {
			return m, func() tea.Msg { return NavigateTo{Page: pageSignIn} }
		}
	case key.Matches(msg, keys.signOut):
		if m.auth.Session() != nil {
			return m, cmdSignOut(m.ctx, m.auth)
		}
	}
	return m, nil
}

func (m *mainLoopModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.search.SetValue("")
			m.search.Blur()
			m.mode = modeList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.search.Blur()
			m.mode = modeList
			m.selectFirstVisible()
			return m, nil
		case keyMsg.Type == tea.KeyUp:
			m.move(-1)
			return m, nil
		case keyMsg.Type == tea.KeyDown:
			m.move(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *mainLoopModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.editor.ref.IsPending() {
				return m, m.setStatus("The note is still being created")
			}
			return m, cmdSaveNote(m.ctx, m.notes, m.editor.ref.ID(), m.editor.patch())
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.update(msg)
	return m, cmd
}

func (m *mainLoopModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.mode = modeList
		return m, cmdRemoveNote(m.ctx, m.notes, m.prompt.id)
	case key.Matches(keyMsg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m *mainLoopModel) handleOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	m.state = m.notes.Snapshot()

	if msg.op == opCreate && m.openCreated {
		m.openCreated = false
		if n, ok := m.state.SelectedNote(); ok && msg.ok {
			m.editor = newEditorModel(n, m.width)
			m.mode = modeEdit
		}
	}

	if !msg.ok {
		return m, nil
	}

	switch msg.op {
	case opCreate:
		return m, m.setStatus("Note created")
	case opSave:
		return m, m.setStatus("Saved")
	case opDelete:
		return m, m.setStatus("Note deleted")
	case opArchive:
		if m.mode == modeEdit {
			m.mode = modeList
		}
		return m, m.setStatus("Note archived")
	}
	return m, nil
}

// followSelection keeps the editor bound to the selected note. A pending
// note that got confirmed keeps the typed input; any other change of the
// selected note refills the editor.
func (m *mainLoopModel) followSelection() {
	if m.mode != modeEdit {
		return
	}

	selected, ok := m.state.SelectedNote()
	if !ok {
		m.mode = modeList
		return
	}
	if selected.Ref == m.editor.ref {
		return
	}
	if m.editor.ref.IsPending() && !selected.Ref.IsPending() {
		m.editor.ref = selected.Ref
		return
	}
	m.editor.reset(selected)
}

func (m *mainLoopModel) visible() []models.LocalNote {
	return service.SearchNotes(m.state.Notes, m.search.Value())
}

// move walks the visible notes. Without a search query this is the
// service's own selection walk.
func (m *mainLoopModel) move(delta int) {
	if strings.TrimSpace(m.search.Value()) == "" {
		if delta < 0 {
			m.notes.SelectPrev()
		} else {
			m.notes.SelectNext()
		}
		m.state = m.notes.Snapshot()
		return
	}

	visible := m.visible()
	if len(visible) == 0 {
		return
	}

	idx := -1
	if m.state.Selected != nil {
		for i, n := range visible {
			if n.Ref == *m.state.Selected {
				idx = i
				break
			}
		}
	}

	next := idx + delta
	if idx < 0 {
		next = 0
	}
	next = max(0, min(next, len(visible)-1))

	m.notes.Select(visible[next].Ref)
	m.state = m.notes.Snapshot()
}

func (m *mainLoopModel) selectFirstVisible() {
	visible := m.visible()
	if len(visible) == 0 {
		return
	}
	if m.state.Selected != nil {
		for _, n := range visible {
			if n.Ref == *m.state.Selected {
				return
			}
		}
	}
	m.notes.Select(visible[0].Ref)
	m.state = m.notes.Snapshot()
}

func (m *mainLoopModel) selectedConfirmed() (models.LocalNote, bool) {
	n, ok := m.state.SelectedNote()
	if !ok {
		return models.LocalNote{}, false
	}
	if n.Ref.IsPending() {
		m.status = "The note is still being created"
		return models.LocalNote{}, false
	}
	return n, true
}

func (m *mainLoopModel) setStatus(status string) tea.Cmd {
	m.statusSeq++
	m.status = status
	return cmdClearStatus(m.statusSeq)
}

func (m *mainLoopModel) View() string {
	switch m.mode {
	case modeEdit:
		return renderPage(m.topBar(), m.banner()+m.editor.View(),
			"tab: next field │ ctrl+s: save │ esc: back")
	case modeConfirmDelete:
		return renderPage(m.topBar(), m.banner()+m.prompt.View(), "y: delete │ n: cancel")
	}

	var b strings.Builder
	b.WriteString(m.banner())
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewList())

	if n, ok := m.state.SelectedNote(); ok {
		b.WriteString("\n")
		b.WriteString(uiDivider)
		b.WriteString("\n")
		b.WriteString(previewLines(n.Note.Content, 5, m.width-6))
	}

	hotKeys := "n: new │ enter: edit │ d: delete │ a: archive │ c: copy │ /: search │ r: refresh │ v: about │ q: quit"
	switch {
	case m.auth.Session() != nil:
		hotKeys += " │ o: sign out"
	case m.auth.Configured():
		hotKeys += " │ s: sign in"
	}

	return renderPage(m.topBar(), b.String(), hotKeys)
}

func (m *mainLoopModel) topBar() string {
	conn := offlineStyle.Render("Offline")
	if m.auth.Configured() {
		conn = onlineStyle.Render("Connected")
	}

	who := "signed out"
	if u := m.auth.User(); u != nil {
		who = u.Email
		if who == "" {
			who = u.ID
		}
	}

	bar := fmt.Sprintf("go-notes │ %s │ %s │ %d notes", conn, who, len(m.state.Notes))
	if m.state.Loading {
		bar += " │ loading..."
	}
	return bar
}

func (m *mainLoopModel) banner() string {
	var b strings.Builder
	if m.state.Err != "" {
		b.WriteString(errorStyle.Render("! " + m.state.Err))
		b.WriteString(helpStyle.Render("  (x: dismiss)"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func (m *mainLoopModel) viewList() string {
	if len(m.state.Notes) == 0 {
		if m.state.Loading {
			return "Loading notes..."
		}
		return "No notes yet. Press n to create one."
	}

	visible := m.visible()
	if len(visible) == 0 {
		return "No notes match the search."
	}

	titleWidth := max(20, m.width-50)

	var b strings.Builder
	for _, n := range visible {
		cursor := "  "
		selected := m.state.Selected != nil && *m.state.Selected == n.Ref
		if selected {
			cursor = "> "
		}

		title := n.Note.DisplayTitle()
		if n.Ref.IsPending() {
			title += " (saving...)"
		}

		line := fmt.Sprintf("%s%s  %s  %s",
			cursor,
			padRight(fitText(title, titleWidth), titleWidth),
			formatTime(n.Note.LastTouched()),
			formatTagsInline(n.Note.Tags),
		)
		if selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
