package tui

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Switch  key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Yes     key.Binding
	No      key.Binding
	Focus   key.Binding
}

var keys = listKeyMap{
	New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Edit:    key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	Delete:  key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
	Switch:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch")),
	Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Confirm: key.NewBinding(key.WithKeys("enter")),
	Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+g")),
	Yes:     key.NewBinding(key.WithKeys("y", "Y")),
	No:      key.NewBinding(key.WithKeys("n", "N")),
	Focus:   key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l")),
}

func (k listKeyMap) shortHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Delete, k.Switch, k.Reload, k.Help, k.Quit}
}
