package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// BattleKeyMap defines the key bindings of the battle screen.
type BattleKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Move    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BattleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Confirm, k.Cancel, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k BattleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Cancel, k.Move},
		{k.Help, k.Quit},
	}
}

// DefaultBattleKeyMap returns default key bindings.
func DefaultBattleKeyMap() BattleKeyMap {
	return BattleKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "enemy row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "ally row"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right column"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " ", "z"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "b", "x"),
			key.WithHelp("esc", "back"),
		),
		Move: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "pick move"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to abstract buttons.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys BattleKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultBattleKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() BattleKeyMap {
	return km.keys
}

// MapKey translates a key message to a button.
// Returns ButtonNone for keys without a binding.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Button {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ButtonQuit
	case key.Matches(msg, km.keys.Up):
		return core.ButtonUp
	case key.Matches(msg, km.keys.Down):
		return core.ButtonDown
	case key.Matches(msg, km.keys.Left):
		return core.ButtonLeft
	case key.Matches(msg, km.keys.Right):
		return core.ButtonRight
	case key.Matches(msg, km.keys.Confirm):
		return core.ButtonAction
	case key.Matches(msg, km.keys.Cancel):
		return core.ButtonCancel
	case key.Matches(msg, km.keys.Help):
		return core.ButtonMenu
	}
	return core.ButtonNone
}

// MoveIndex returns the zero-based move picked with a number key.
func (km *KeyMapper) MoveIndex(msg tea.KeyMsg) (int, bool) {
	if !key.Matches(msg, km.keys.Move) {
		return 0, false
	}
	s := msg.String()
	return int(s[0] - '1'), true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionHistory
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionHistory
	}

	return MenuActionNone
}
