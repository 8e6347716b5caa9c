package core

// Action represents a semantic input, abstracted from physical keys and
// pointer buttons so every frontend feeds the simulation the same way.
type Action int

const (
	ActionNone        Action = iota
	ActionPrimary            // Space, Up, W, Enter, left click - start, flap, restart
	ActionQuit               // Q, Ctrl+C, Esc in the window - end the loop
	ActionLeaderboard        // Tab - toggle the leaderboard overlay
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionQuit:
		return "Quit"
	case ActionLeaderboard:
		return "Leaderboard"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
// An action pressed several times within one tick counts once.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
