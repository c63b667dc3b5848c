package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	toggle    key.Binding
	delete    key.Binding
	refresh   key.Binding
	copy      key.Binding
	version   key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	toggle:    key.NewBinding(key.WithKeys("t", " ")),
	delete:    key.NewBinding(key.WithKeys("d", "delete")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	version:   key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
