package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Execute    key.Binding
	Clear      key.Binding
	ShowStats  key.Binding
	Help       key.Binding
	Quit       key.Binding
	HistoryUp  key.Binding
	HistoryDn  key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Execute, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Execute, k.Clear, k.ShowStats},
		{k.HistoryUp, k.HistoryDn, k.ScrollUp, k.ScrollDown},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Execute: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run command"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear output"),
	),
	ShowStats: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "show stats"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	HistoryUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous command"),
	),
	HistoryDn: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next command"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll output up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll output down"),
	),
}
