package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/glabrego/headline-cli/internal/share"
)

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Open     key.Binding
	Search   key.Binding
	Clear    key.Binding
	More     key.Binding
	Collapse key.Binding
	Home     key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Quit     key.Binding

	Share map[share.Network]key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "k"), key.WithHelp("←", "previous")),
		Right:    key.NewBinding(key.WithKeys("right", "j"), key.WithHelp("→", "next")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "row up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "row down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
		Open:     key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear search")),
		More:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "more")),
		Collapse: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse")),
		Home:     key.NewBinding(key.WithKeys("h", "home"), key.WithHelp("h", "home")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Share: map[share.Network]key.Binding{
			share.Twitter:  key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "share on X")),
			share.Facebook: key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "share on Facebook")),
			share.WhatsApp: key.NewBinding(key.WithKeys("W"), key.WithHelp("W", "share on WhatsApp")),
			share.Threads:  key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "share on Threads")),
		},
	}
}
