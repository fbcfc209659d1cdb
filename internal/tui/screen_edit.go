package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	editTitle = iota
	editTags
	editContent
	editFieldCount
)

// editorModel edits one note. It is bound to the note ref it was opened
// with and is refilled when the bound note changes identity.
type editorModel struct {
	ref models.NoteRef

	title   textinput.Model
	tags    textinput.Model
	content textarea.Model
	focus   int
}

func newEditorModel(n models.LocalNote, width int) editorModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200

	tags := textinput.New()
	tags.Placeholder = "comma, separated, tags"

	content := textarea.New()
	content.Placeholder = "Write your note..."
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.SetHeight(10)

	e := editorModel{title: title, tags: tags, content: content}
	e.setWidth(width)
	e.reset(n)
	return e
}

func (e *editorModel) setWidth(width int) {
	w := width - 16
	if w < 30 {
		w = 30
	}
	e.title.Width = w
	e.tags.Width = w
	e.content.SetWidth(w)
}

// reset binds the editor to n and discards unsaved input.
func (e *editorModel) reset(n models.LocalNote) {
	e.ref = n.Ref
	e.title.SetValue(n.Note.Title)
	e.tags.SetValue(models.FormatTags(n.Note.Tags))
	e.content.SetValue(n.Note.Content)
	e.setFocus(editTitle)
}

func (e *editorModel) setFocus(field int) {
	e.title.Blur()
	e.tags.Blur()
	e.content.Blur()

	e.focus = (field + editFieldCount) % editFieldCount
	switch e.focus {
	case editTitle:
		e.title.Focus()
	case editTags:
		e.tags.Focus()
	case editContent:
		e.content.Focus()
	}
}

func (e editorModel) patch() models.NotePatch {
	title := strings.TrimSpace(e.title.Value())
	content := e.content.Value()
	tags := models.ParseTags(e.tags.Value())
	return models.NotePatch{Title: &title, Content: &content, Tags: &tags}
}

func (e editorModel) update(msg tea.Msg) (editorModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			e.setFocus(e.focus + 1)
			return e, nil
		case key.Matches(keyMsg, keys.backtab):
			e.setFocus(e.focus - 1)
			return e, nil
		}
	}

	var cmd tea.Cmd
	switch e.focus {
	case editTitle:
		e.title, cmd = e.title.Update(msg)
	case editTags:
		e.tags, cmd = e.tags.Update(msg)
	case editContent:
		e.content, cmd = e.content.Update(msg)
	}
	return e, cmd
}

func (e editorModel) View() string {
	var b strings.Builder
	b.WriteString("Title │ ")
	b.WriteString(e.title.View())
	b.WriteString("\n")
	b.WriteString("Tags  │ ")
	b.WriteString(e.tags.View())
	b.WriteString("\n\n")
	b.WriteString(e.content.View())
	if e.ref.IsPending() {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("saving new note..."))
	}
	return b.String()
}
