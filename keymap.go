package main

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the chords the controller intercepts. Everything else
// falls through to the focused text input, so letters like j/k stay
// available for typing shell commands.
type keyMap struct {
	Quit        key.Binding
	FocusSwitch key.Binding
	Up          key.Binding
	Down        key.Binding
	Submit      key.Binding
	Copy        key.Binding
	Paste       key.Binding
	Rename      key.Binding
	YankPath    key.Binding
	Delete      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		FocusSwitch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/run"),
		),
		Copy: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "copy"),
		),
		Paste: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "paste"),
		),
		Rename: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "rename"),
		),
		YankPath: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "yank path"),
		),
		Delete: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "delete"),
		),
	}
}

// legend returns the bindings shown in the command bar, in display order.
func (k keyMap) legend() []key.Binding {
	return []key.Binding{
		k.FocusSwitch, k.Submit, k.Copy, k.Paste, k.Rename, k.YankPath, k.Delete, k.Quit,
	}
}
