package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Reload    key.Binding
	Theme     key.Binding
	Logout    key.Binding
	Dismiss   key.Binding
	Back      key.Binding
	Copy      key.Binding
	Browse    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Cycle     key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextTab:   key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next tab")),
	PrevTab:   key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev tab")),
	Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Add:       key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
	Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Logout:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
	Dismiss:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy email")),
	Browse:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
	Confirm:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
	Cancel:    key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
	Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
	Cycle:     key.NewBinding(key.WithKeys("h", "l"), key.WithHelp("h/l", "choose")),
}

// helpBar renders bindings as a single help line.
func helpBar(bindings ...key.Binding) string {
	s := ""
	for i, b := range bindings {
		if i > 0 {
			s += "  "
		}
		h := b.Help()
		s += helpEntry(h.Key, h.Desc)
	}
	return " " + s
}
