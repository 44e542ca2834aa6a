package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	newItem  key.Binding
	sync     key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	check    key.Binding
	generate key.Binding
	clear    key.Binding
	connect  key.Binding
	version  key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	sync:     key.NewBinding(key.WithKeys("s")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	check:    key.NewBinding(key.WithKeys(" ")),
	generate: key.NewBinding(key.WithKeys("g")),
	clear:    key.NewBinding(key.WithKeys("x")),
	connect:  key.NewBinding(key.WithKeys("o")),
	version:  key.NewBinding(key.WithKeys("v")),
}
