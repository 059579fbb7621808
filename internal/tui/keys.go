package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankwizard/internal/menu"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Return key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		// Line feed, sent by some terminals and keypads instead of CR.
		Return: key.NewBinding(
			key.WithKeys("ctrl+j"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k keyMap) translate(msg tea.KeyMsg) menu.Key {
	switch {
	case key.Matches(msg, k.Up):
		return menu.KeyUp
	case key.Matches(msg, k.Down):
		return menu.KeyDown
	case key.Matches(msg, k.Enter):
		return menu.KeyEnter
	case key.Matches(msg, k.Return):
		return menu.KeyReturn
	default:
		return menu.KeyOther
	}
}
