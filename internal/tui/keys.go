package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	quit     key.Binding
	like     key.Binding
	hide     key.Binding
	next     key.Binding
	previous key.Binding
	copy     key.Binding
	reload   key.Binding
	info     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc", "backspace")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	like:     key.NewBinding(key.WithKeys("l")),
	hide:     key.NewBinding(key.WithKeys("h")),
	next:     key.NewBinding(key.WithKeys("n", "right")),
	previous: key.NewBinding(key.WithKeys("p", "left")),
	copy:     key.NewBinding(key.WithKeys("c")),
	reload:   key.NewBinding(key.WithKeys("r")),
	info:     key.NewBinding(key.WithKeys("i")),
}
