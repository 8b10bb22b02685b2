package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left (held)
	ActionRight          // D, Right arrow - move right (held)
	ActionJump           // Space, W, Up - jump (edge-triggered)
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart session after it ended
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// isHeld reports whether an action is a held state rather than an edge.
func (a Action) isHeld() bool {
	return a == ActionLeft || a == ActionRight
}

// InputFrame represents the input state for the player during one simulation tick.
// Held directions appear in every frame while held; edge actions appear once.
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// InputState accumulates key events between ticks.
// Left and right are held states that persist until released. Every other
// action is an edge: a press fires once and does not repeat until the key
// has been released and pressed again.
type InputState struct {
	held    map[Action]bool
	down    map[Action]bool
	pending InputFrame
}

// NewInputState creates an input state with nothing pressed.
func NewInputState() *InputState {
	return &InputState{
		held:    make(map[Action]bool),
		down:    make(map[Action]bool),
		pending: NewInputFrame(),
	}
}

// Press records a key-down for the action.
func (s *InputState) Press(a Action) {
	if a == ActionNone {
		return
	}
	if a.isHeld() {
		s.held[a] = true
		return
	}
	if s.down[a] {
		return
	}
	s.down[a] = true
	s.pending.Set(a)
}

// Release records a key-up for the action. Releasing an edge action has no
// effect other than allowing the next press to fire.
func (s *InputState) Release(a Action) {
	delete(s.held, a)
	delete(s.down, a)
}

// Held reports whether a held action is currently pressed.
func (s *InputState) Held(a Action) bool {
	return s.held[a]
}

// Frame returns the input for the next tick: all held directions plus
// every edge action fired since the previous call.
func (s *InputState) Frame() InputFrame {
	frame := s.pending.Clone()
	for a := range s.held {
		frame.Set(a)
	}
	s.pending.Clear()
	return frame
}

// Reset releases everything and discards pending edges.
func (s *InputState) Reset() {
	for a := range s.held {
		delete(s.held, a)
	}
	for a := range s.down {
		delete(s.down, a)
	}
	s.pending.Clear()
}
