package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - face/move up
	ActionDown           // S, Down arrow - face/move down
	ActionLeft           // A, Left arrow - face/move left
	ActionRight          // D, Right arrow - face/move right
	ActionHarvest        // Space, E - chop adjacent trees
	ActionBuild          // B, Enter - lay a bridge ahead
	ActionSave           // Ctrl+S - write the save slot now
	ActionQuit           // Q, Ctrl+C - save and leave
)

// Directions lists the movement actions in priority order: when several are
// held, the first one wins.
var Directions = [4]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionHarvest:
		return "Harvest"
	case ActionBuild:
		return "Build"
	case ActionSave:
		return "Save"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
// Held is the level of each action; Pressed marks actions that went from
// released to held on this tick.
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held without an edge.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press marks an action as held and newly pressed.
func (f *InputFrame) Press(a Action) {
	f.Hold(a)
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// IsHeld reports whether the action is held this tick.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// JustPressed reports whether the action's edge fired this tick.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Pressed[a]
}

// Empty reports whether nothing is held.
func (f InputFrame) Empty() bool {
	for _, v := range f.Held {
		if v {
			return false
		}
	}
	return true
}

// InputTracker turns per-tick held sets into frames with press edges.
// An action is pressed on the first tick it is held after a tick it was not.
type InputTracker struct {
	prev map[Action]bool
}

// NewInputTracker creates a tracker with nothing held.
func NewInputTracker() *InputTracker {
	return &InputTracker{prev: make(map[Action]bool)}
}

// Next builds the frame for a tick in which exactly the given actions are held.
func (t *InputTracker) Next(held ...Action) InputFrame {
	f := NewInputFrame()
	now := make(map[Action]bool, len(held))
	for _, a := range held {
		if a == ActionNone {
			continue
		}
		now[a] = true
		if t.prev[a] {
			f.Hold(a)
		} else {
			f.Press(a)
		}
	}
	t.prev = now
	return f
}

// Reset forgets the previous tick, so the next held action counts as pressed.
// The terminal layer calls it when the window loses focus.
func (t *InputTracker) Reset() {
	t.prev = make(map[Action]bool)
}
