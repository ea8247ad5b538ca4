package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
	Enter    key.Binding
	Add      key.Binding
	Category key.Binding
	Sub      key.Binding
	Folder   key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Search   key.Binding
	Platform key.Binding
	Sort     key.Binding
	Theme    key.Binding
	Share    key.Binding
	Lock     key.Binding
	Help     key.Binding
	Quit     key.Binding
	Escape   key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left pane")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right pane")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add profile")),
	Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "new category")),
	Sub:      key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "new subcategory")),
	Folder:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "new folder")),
	Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Platform: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "platform filter")),
	Sort:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort mode")),
	Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Share:    key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "share view")),
	Lock:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "lock")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
