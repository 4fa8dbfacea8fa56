package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings for control keys; character keys go through keypad.Lookup
type keyMap struct {
	Evaluate key.Binding
	Delete   key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Evaluate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter/=", "evaluate"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Evaluate, k.Delete, k.Clear},
		{k.Help, k.Quit},
	}
}
