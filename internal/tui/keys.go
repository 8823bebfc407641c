package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Toggle    key.Binding
	Save      key.Binding
	Favorite  key.Binding
	Add       key.Binding
	Remove    key.Binding
	Clear     key.Binding
	NewLabel  key.Binding
	NextColor key.Binding
	Help      key.Binding
	Quit      key.Binding
	Escape    key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit/select")),
	Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "create project")),
	Favorite:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
	Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add milestone")),
	Remove:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove milestone")),
	Clear:     key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("⌫", "clear date")),
	NewLabel:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new label")),
	NextColor: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next color")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "cancel")),
	Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
