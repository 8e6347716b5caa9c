package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), true)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPrimary},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionPrimary},
		{"w", runeKey("w"), core.ActionPrimary},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPrimary},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionLeaderboard},
		{"unbound letter", runeKey("x"), core.ActionNone},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapperMapMouse(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		msg      tea.MouseMsg
		expected core.Action
	}{
		{
			name:     "left press",
			enabled:  true,
			msg:      tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			expected: core.ActionPrimary,
		},
		{
			name:     "left release",
			enabled:  true,
			msg:      tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
			expected: core.ActionNone,
		},
		{
			name:     "right press",
			enabled:  true,
			msg:      tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			expected: core.ActionNone,
		},
		{
			name:     "mouse disabled",
			enabled:  false,
			msg:      tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			expected: core.ActionNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			km := NewKeyMapper(DefaultKeyMap(), tc.enabled)
			if got := km.MapMouse(tc.msg); got != tc.expected {
				t.Errorf("MapMouse() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSpaceAndClickAreTheSameInput(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), true)

	fromKey := core.NewInputFrame()
	km.MapToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, &fromKey)

	fromClick := core.NewInputFrame()
	km.MapToFrame(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &fromClick)

	if !fromKey.Has(core.ActionPrimary) || !fromClick.Has(core.ActionPrimary) {
		t.Errorf("space and click should both set the primary action: key=%v click=%v",
			fromKey.Has(core.ActionPrimary), fromClick.Has(core.ActionPrimary))
	}
}

func TestMapToFrameOnlyRecordsPrimary(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), true)
	frame := core.NewInputFrame()

	if got := km.MapToFrame(runeKey("q"), &frame); got != core.ActionQuit {
		t.Errorf("MapToFrame(q) = %v, expected quit", got)
	}
	if got := km.MapToFrame(tea.KeyMsg{Type: tea.KeyTab}, &frame); got != core.ActionLeaderboard {
		t.Errorf("MapToFrame(tab) = %v, expected leaderboard", got)
	}
	if frame.Has(core.ActionQuit) || frame.Has(core.ActionLeaderboard) {
		t.Error("platform actions must not reach the game input")
	}
}
