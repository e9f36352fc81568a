package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the playground.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Preview  key.Binding
	Queue    key.Binding
	Activate key.Binding
	Legacy   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Focus next area"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Focus previous area"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Highlight left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Highlight right"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Open preview"),
		),
		Queue: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Queue highlighted"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Activate queued"),
		),
		Legacy: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Legacy set highlighted"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Preview, k.Queue, k.Activate, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Preview},
		{k.Left, k.Right, k.Queue, k.Legacy},
		{k.Activate, k.Help, k.Quit},
	}
}
