package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// KeyMap defines the key bindings for playing.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Space key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Space, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Space, k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Space: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultKeyMap()}
}

// MapKey translates a key message to either a direction or a platform action.
// Unbound keys return DirNone and ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Direction, core.Action) {
	switch {
	case key.Matches(msg, km.Keys.Quit):
		return core.DirNone, core.ActionQuit
	case key.Matches(msg, km.Keys.Pause):
		return core.DirNone, core.ActionPause
	case key.Matches(msg, km.Keys.Up):
		return core.DirUp, core.ActionNone
	case key.Matches(msg, km.Keys.Down):
		return core.DirDown, core.ActionNone
	case key.Matches(msg, km.Keys.Left):
		return core.DirLeft, core.ActionNone
	case key.Matches(msg, km.Keys.Right):
		return core.DirRight, core.ActionNone
	case key.Matches(msg, km.Keys.Space):
		return core.DirSpace, core.ActionNone
	}
	return core.DirNone, core.ActionNone
}
