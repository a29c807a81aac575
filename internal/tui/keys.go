package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next      key.Binding
	prev      key.Binding
	submit    key.Binding
	purchase  key.Binding
	copy      key.Binding
	reset     key.Binding
	buildInfo key.Binding
	back      key.Binding
	quit      key.Binding
}

var keys = keyMap{
	next:      key.NewBinding(key.WithKeys("tab", "down")),
	prev:      key.NewBinding(key.WithKeys("shift+tab", "up")),
	submit:    key.NewBinding(key.WithKeys("enter")),
	purchase:  key.NewBinding(key.WithKeys("ctrl+p")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
	buildInfo: key.NewBinding(key.WithKeys("f2")),
	back:      key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
}
