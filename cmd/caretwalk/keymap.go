package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left, Right key.Binding
	Home, End   key.Binding
	ToggleUnit  key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "visual line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "visual line end")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		ToggleUnit: key.NewBinding(key.WithKeys("ctrl+left", "ctrl+right", "alt+left", "alt+right", "u"), key.WithHelp("u", "toggle unit moves")),

		Quit: key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Home, k.End, k.ToggleUnit, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right}, {k.Home, k.End}, {k.ToggleUnit, k.Quit}}
}
