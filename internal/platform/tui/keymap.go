package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// KeyMap defines the key bindings for the game and the leaderboard.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Primary     key.Binding
	Leaderboard key.Binding
	Close       key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.Leaderboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Primary},
		{k.Leaderboard, k.Close, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Primary: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w", "enter"),
			key.WithHelp("space/click", "flap"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "leaderboard"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea input messages to game actions.
type KeyMapper struct {
	keys  KeyMap
	mouse bool
}

// NewKeyMapper creates a key mapper. When mouse is false, clicks are ignored.
func NewKeyMapper(keys KeyMap, mouse bool) *KeyMapper {
	return &KeyMapper{keys: keys, mouse: mouse}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Primary):
		return core.ActionPrimary
	case key.Matches(msg, km.keys.Leaderboard):
		return core.ActionLeaderboard
	}
	return core.ActionNone
}

// MapMouse translates a mouse message. A left-button press is the same
// action as the space bar.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if !km.mouse {
		return core.ActionNone
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionPrimary
	}
	return core.ActionNone
}

// MapToFrame records the action for msg in frame, if there is one.
// Returns the action so the caller can react to quit and leaderboard.
func (km *KeyMapper) MapToFrame(msg tea.Msg, frame *core.InputFrame) core.Action {
	var action core.Action
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action = km.MapKey(msg)
	case tea.MouseMsg:
		action = km.MapMouse(msg)
	}
	if action == core.ActionPrimary {
		frame.Set(action)
	}
	return action
}
