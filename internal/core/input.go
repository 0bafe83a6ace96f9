package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer the plane left
	ActionRight          // D, Right arrow - steer the plane right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// Pressed holds actions triggered this tick; Held holds actions whose key
// is down. A press always implies a hold for the same tick.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed (and held) for this frame.
func (f *InputFrame) Set(a Action) {
	f.init()
	f.Pressed[a] = true
	f.Held[a] = true
}

// Hold marks an action as held without a fresh press.
func (f *InputFrame) Hold(a Action) {
	f.init()
	f.Held[a] = true
}

func (f *InputFrame) init() {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// IsHeld returns true if the given action's key is down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Pressed {
		c.Pressed[k] = v
	}
	for k, v := range f.Held {
		c.Held[k] = v
	}
	return c
}
