package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for both screens.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Toggle key.Binding
	Number key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings. w and s mirror the line
// menu.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("s/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Number: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "toggle row (enter ends a number)"),
		),
		Back: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keys is the global key map instance.
var keys = DefaultKeyMap()

// menuBindings are shown in the footer of the main menu.
func menuBindings() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Enter, keys.Quit}
}

// listBindings are shown in the footer of a selection list.
func listBindings() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Toggle, keys.Number, keys.Back}
}
