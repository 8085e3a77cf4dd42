package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search     key.Binding
	AddSection key.Binding
	AddItem    key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Toggle     key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		AddSection: key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "new section")),
		AddItem:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "add item")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete"), key.WithDisabled()),
		Toggle:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand/collapse")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) extra() []key.Binding {
	return []key.Binding{k.Search, k.AddSection, k.AddItem, k.Edit, k.Delete, k.Toggle}
}
