package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with intents rather than raw input.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - held for continuous movement
	ActionRight          // Right arrow, D - held for continuous movement
	ActionRestart        // R - discrete restart after game over
	ActionQuit           // Q, Ctrl+C - exit the session
)

// recordedActions are the actions that affect simulation and are kept in replays.
var recordedActions = []Action{ActionLeft, ActionRight, ActionRestart}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

func (a Action) bit() uint8 {
	if a == ActionNone || a > ActionQuit {
		return 0
	}
	return 1 << (a - 1)
}

// InputFrame is the set of actions active during one simulation tick.
// Movement actions mean "key held this tick"; ActionRestart means
// "key pressed this tick".
type InputFrame struct {
	bits uint8
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	f.bits |= a.bit()
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f.bits&b != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Mask encodes the simulation-relevant actions as one byte for recording.
// ActionQuit is not part of the mask.
func (f InputFrame) Mask() byte {
	var m byte
	for _, a := range recordedActions {
		if f.Has(a) {
			m |= a.bit()
		}
	}
	return m
}

// FrameFromMask decodes a byte produced by Mask.
func FrameFromMask(m byte) InputFrame {
	var f InputFrame
	for _, a := range recordedActions {
		if m&a.bit() != 0 {
			f.Set(a)
		}
	}
	return f
}
