package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the board's bindings while the task table has focus.
type KeyMap struct {
	New           key.Binding
	Edit          key.Binding
	Toggle        key.Binding
	Delete        key.Binding
	Search        key.Binding
	ShowCompleted key.Binding
	PrevPage      key.Binding
	NextPage      key.Binding
	Refresh       key.Binding
	Quit          key.Binding

	// Form and search inputs.
	NextField key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

var DefaultKeyMap = KeyMap{
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "complete"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	ShowCompleted: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "show completed"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("→", "next page"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
	),
}

// ShortHelp lists the table bindings in display order.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Toggle, k.Delete, k.Search, k.ShowCompleted, k.PrevPage, k.NextPage, k.Quit}
}
