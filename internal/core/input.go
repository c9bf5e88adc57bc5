package core

// Action represents a semantic game action, abstracted from physical key presses.
// The key mapper translates configured bindings into these intents; the
// engine never sees raw key names.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // shift the falling piece one column left
	ActionMoveRight        // shift the falling piece one column right
	ActionRotateCW         // rotate clockwise
	ActionRotateCCW        // rotate counter-clockwise
	ActionSoftDrop         // one gravity step, scored
	ActionHardDrop         // drop to rest and place immediately
	ActionHold             // swap the falling piece with the hold slot
	ActionQuit             // forfeit the game or leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
