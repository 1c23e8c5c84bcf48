package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/riverwood/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Harvest key.Binding
	Build   key.Binding
	Save    key.Binding
	Quit    key.Binding
	Help    key.Binding

	move key.Binding // help entry only
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "w")),
		Down:  key.NewBinding(key.WithKeys("down", "s")),
		Left:  key.NewBinding(key.WithKeys("left", "a")),
		Right: key.NewBinding(key.WithKeys("right", "d")),
		Harvest: key.NewBinding(
			key.WithKeys(" ", "e"),
			key.WithHelp("space/e", "chop"),
		),
		Build: key.NewBinding(
			key.WithKeys("b", "enter"),
			key.WithHelp("b/enter", "bridge"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "save & quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows/wasd", "move"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.move, k.Harvest, k.Build, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.move, k.Harvest, k.Build},
		{k.Save, k.Quit, k.Help},
	}
}

// Action translates a key message to a game action, ActionNone if unbound.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Save):
		return core.ActionSave
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Harvest):
		return core.ActionHarvest
	case key.Matches(msg, k.Build):
		return core.ActionBuild
	}
	return core.ActionNone
}
