package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - move left
	ActionRight            // D, Right arrow - move right
	ActionUp               // W, Up arrow - move up
	ActionDown             // S, Down arrow - move down
	ActionFire             // Space - shoot
	ActionPrimary          // 1 - start / restart
	ActionSecondary        // 2 - quit / back to menu
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionPrimary:
		return "Primary"
	case ActionSecondary:
		return "Secondary"
	default:
		return "Unknown"
	}
}

// Pointer is a pointer position in the platform's own coordinate space,
// together with the size of the viewport it was measured in.
type Pointer struct {
	X, Y          int
	Width, Height int
}

// InputEvent is either an action or a pointer move.
type InputEvent struct {
	Action  Action
	Pointer *Pointer
}

// InputFrame collects the input received between two simulation ticks.
// Events keep their arrival order; games replay them before stepping.
type InputFrame struct {
	events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.events = append(f.events, InputEvent{Action: a})
}

// Point records a pointer move for this frame.
func (f *InputFrame) Point(x, y, width, height int) {
	f.events = append(f.events, InputEvent{
		Pointer: &Pointer{X: x, Y: y, Width: width, Height: height},
	})
}

// Events returns the recorded events in arrival order.
func (f InputFrame) Events() []InputEvent {
	return f.events
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}
