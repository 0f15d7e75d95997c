package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the preview
type KeyMap struct {
	ToggleAmbient    key.Binding
	ToggleVisibility key.Binding
	Quit             key.Binding
	ForceQuit        key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleAmbient: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "ambient"),
		),
		ToggleVisibility: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "visibility"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleAmbient, k.ToggleVisibility, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleAmbient, k.ToggleVisibility, k.Quit, k.ForceQuit},
	}
}
