package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	newNote   key.Binding
	edit      key.Binding
	delete    key.Binding
	archive   key.Binding
	copy      key.Binding
	refresh   key.Binding
	search    key.Binding
	dismiss   key.Binding
	signIn    key.Binding
	signOut   key.Binding
	save      key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	newNote:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e", "enter")),
	delete:    key.NewBinding(key.WithKeys("d")),
	archive:   key.NewBinding(key.WithKeys("a")),
	copy:      key.NewBinding(key.WithKeys("c")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	search:    key.NewBinding(key.WithKeys("/")),
	dismiss:   key.NewBinding(key.WithKeys("x")),
	signIn:    key.NewBinding(key.WithKeys("s")),
	signOut:   key.NewBinding(key.WithKeys("o")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
