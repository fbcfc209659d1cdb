package tui

import (
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// inputCapturer is implemented by pages that sometimes route plain keys to
// a text field; global hotkeys are skipped while they do.
type inputCapturer interface {
	capturesInput() bool
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) follows the session between the sign-in and notes pages
// 4) delegates all other messages to the active page
type RootModel struct {
	auth     service.ClientAuthService
	pages    map[string]tea.Model
	current  string
	optional bool

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(auth service.ClientAuthService, pages map[string]tea.Model, startPage string, optional bool, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		auth:      auth,
		pages:     pages,
		current:   startPage,
		optional:  optional,
		buildInfo: buildInfo,
	}
}

// startPage is the sign-in page when a backend is configured, nobody is
// signed in and signing in is not optional.
func startPage(auth service.ClientAuthService, optional bool) string {
	if auth.Configured() && auth.Session() == nil && !optional {
		return pageSignIn
	}
	return pageNotes
}

func (r RootModel) Init() tea.Cmd {
	if page, ok := r.pages[r.current]; ok {
		return page.Init()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyCtrlC {
			return r, tea.Quit
		}
		if r.showBuildInfo {
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.buildInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if key.Matches(keyMsg, keys.buildInfo) && !r.capturesInput() {
			r.showBuildInfo = true
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)
	case notesChangedMsg:
		return r.deliver(pageNotes, msg)
	case sessionChangedMsg:
		return r.followSession(msg)
	case tea.WindowSizeMsg:
		var cmds []tea.Cmd
		for name := range r.pages {
			var cmd tea.Cmd
			r, cmd = r.deliverModel(name, msg)
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)
	}

	return r.deliver(r.current, msg)
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = nav.Page

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, next.Init()
}

// followSession tells every page about the change and moves to the page
// matching the new session.
func (r RootModel) followSession(msg sessionChangedMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, name := range []string{pageSignIn, pageNotes} {
		var cmd tea.Cmd
		r, cmd = r.deliverModel(name, msg)
		cmds = append(cmds, cmd)
	}

	signedIn := r.auth.Session() != nil
	switch {
	case signedIn && r.current == pageSignIn:
		r.current = pageNotes
	case !signedIn && r.auth.Configured() && !r.optional:
		if r.current != pageSignIn {
			r.current = pageSignIn
			if page, ok := r.pages[pageSignIn]; ok {
				cmds = append(cmds, page.Init())
			}
		}
	}

	return r, tea.Batch(cmds...)
}

func (r RootModel) deliver(name string, msg tea.Msg) (tea.Model, tea.Cmd) {
	return r.deliverModel(name, msg)
}

func (r RootModel) deliverModel(name string, msg tea.Msg) (RootModel, tea.Cmd) {
	page, ok := r.pages[name]
	if !ok {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[name] = updated
	return r, cmd
}

func (r RootModel) capturesInput() bool {
	c, ok := r.pages[r.current].(inputCapturer)
	return ok && c.capturesInput()
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("go-notes", "", "")
	}
	return appStyle.Render(page.View())
}
