package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zombie-jump/internal/core"
)

// KeyMap defines the key bindings used while playing.
// Movement accepts the arrows and the number-pad digits.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Slow    key.Binding
	Normal  key.Binding
	Fast    key.Binding
	Level   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Slow, k.Normal, k.Fast, k.Level, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Slow, k.Normal, k.Fast, k.Level},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "4"),
			key.WithHelp("←/4", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "6"),
			key.WithHelp("→/6", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "8"),
			key.WithHelp("↑/8", "up (level 2+)"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "2"),
			key.WithHelp("↓/2", "down"),
		),
		Slow: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "slow"),
		),
		Normal: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "normal"),
		),
		Fast: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "fast"),
		),
		Level: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "level"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys; quit is reported as ActionQuit.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Slow):
		return core.ActionSpeedSlow
	case key.Matches(msg, k.Normal):
		return core.ActionSpeedNormal
	case key.Matches(msg, k.Fast):
		return core.ActionSpeedFast
	case key.Matches(msg, k.Level):
		return core.ActionCycleLevel
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// PickerKeyMap defines the key bindings for the game picker.
// Row navigation is handled by the table's own key map.
type PickerKeyMap struct {
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns default picker key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
