package tui

import tea "github.com/charmbracelet/bubbletea"

const (
	pageSignIn = "signin"
	pageNotes  = "notes"
)

// NavigateTo asks RootModel to switch to Page. Payload, if set, is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// notesChangedMsg tells the notes page to take a fresh snapshot.
type notesChangedMsg struct{}

// sessionChangedMsg tells the pages that the signed-in session changed.
type sessionChangedMsg struct{}

type noteOp string

const (
	opRefresh noteOp = "refresh"
	opCreate  noteOp = "create"
	opSave    noteOp = "save"
	opDelete  noteOp = "delete"
	opArchive noteOp = "archive"
)

type opDoneMsg struct {
	op noteOp
	ok bool
}

type emailSentMsg struct {
	email string
	err   error
}

type oauthStartedMsg struct {
	url    string
	copied bool
	err    error
}

type signOutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
