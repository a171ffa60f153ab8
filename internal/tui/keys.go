package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings; which ones are active depends on the state.
type keyMap struct {
	Analyze key.Binding
	Verbose key.Binding
	Cancel  key.Binding
	Restart key.Binding
	Quit    key.Binding
	Abort   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Analyze: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "analyze")),
		Verbose: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "verbose")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "analyze another deck")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "quit")),
		Abort:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// forState returns the bindings shown in the footer for state s.
func (k keyMap) forState(s State) []key.Binding {
	switch s {
	case StateInput:
		quit := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit"))
		return []key.Binding{k.Analyze, k.Verbose, quit}
	case StateAnalyzing:
		return []key.Binding{k.Cancel}
	default:
		return []key.Binding{k.Restart, k.Quit}
	}
}
