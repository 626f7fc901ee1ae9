package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	back   key.Binding
	create key.Binding
	edit   key.Binding
	remove key.Binding
	search key.Binding
	yes    key.Binding
	no     key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		create: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new video")),
		edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		remove: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		yes:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.search, k.create, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.create, k.edit, k.remove},
		{k.search, k.back, k.quit},
	}
}
