package core

// Action represents a semantic game action, abstracted from physical key presses.
// Drivers translate their own key events into actions so the simulation never
// sees a key code.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A - nudge paddle left
	ActionRight        // Right arrow, D - nudge paddle right
	ActionQuit         // Q, Esc, Ctrl+C - close the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
