package core

// Direction is a key the game reacts to, abstracted from physical keys.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirSpace
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirSpace:
		return "space"
	default:
		return "none"
	}
}

// InputEvent is a single press or release of a direction key.
type InputEvent struct {
	Direction Direction
	Pressed   bool
}

// Action represents a platform-level action that is not routed to entities.
type Action int

const (
	ActionNone  Action = iota
	ActionPause        // P, Escape - pause/unpause game
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything that happened between two simulation ticks.
type InputFrame struct {
	// Actions maps platform actions to whether they were triggered this frame.
	Actions map[Action]bool
	// Events holds direction presses and releases in arrival order.
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Push appends a direction event to the frame.
func (f *InputFrame) Push(d Direction, pressed bool) {
	f.Events = append(f.Events, InputEvent{Direction: d, Pressed: pressed})
}

// Clear resets all actions and events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Events = f.Events[:0]
}
