package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Truncate key.Binding
	Wrap     key.Binding
	Widen    key.Binding
	Narrower key.Binding
	Wider    key.Binding
	Style    key.Binding
	Mode     key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Truncate: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "truncate")),
		Wrap:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wrap")),
		Widen:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "widen %")),
		Narrower: key.NewBinding(key.WithKeys("-", "["), key.WithHelp("-", "narrower")),
		Wider:    key.NewBinding(key.WithKeys("+", "=", "]"), key.WithHelp("+", "wider")),
		Style:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "style")),
		Mode:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "plain/ansi")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp satisfies help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Truncate, k.Wrap, k.Widen, k.Narrower, k.Wider, k.Search, k.Help, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Truncate, k.Wrap, k.Narrower, k.Wider},
		{k.Widen, k.Style, k.Mode},
		{k.Search, k.Help, k.Quit},
	}
}
