package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings shared by the wizard screens.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Select    key.Binding
	Back      key.Binding
	ThumbUp   key.Binding
	ThumbDown key.Binding
	Tooltip   key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		ThumbUp: key.NewBinding(
			key.WithKeys("+", "u"),
			key.WithHelp("+", "helpful"),
		),
		ThumbDown: key.NewBinding(
			key.WithKeys("-", "d"),
			key.WithHelp("-", "not helpful"),
		),
		Tooltip: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "about offline"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// stepHelp adapts a list of bindings to help.KeyMap.
type stepHelp []key.Binding

// ShortHelp implements help.KeyMap.
func (h stepHelp) ShortHelp() []key.Binding { return h }

// FullHelp implements help.KeyMap.
func (h stepHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
