package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultHoldWindow is how long a direction stays held after its last key
// event. Long enough to bridge the terminal's autorepeat delay.
const DefaultHoldWindow = 450 * time.Millisecond

// HoldTracker emulates key releases for terminals, which only report
// presses. A held action is released once no press has been seen for the
// hold window, or immediately when its opposite direction is pressed.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a key event for a held action at now.
// Returns the opposite direction if it was held and must be released,
// ActionNone otherwise.
func (h *HoldTracker) Press(a core.Action, now time.Time) core.Action {
	h.last[a] = now

	opp := opposite(a)
	if _, ok := h.last[opp]; ok {
		delete(h.last, opp)
		return opp
	}
	return core.ActionNone
}

// Expire releases every action whose last press is older than the window
// and returns them in action order.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var released []core.Action
	for a, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, a)
			released = append(released, a)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Held reports whether an action is currently considered held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.last[a]
	return ok
}

// Reset forgets all held actions.
func (h *HoldTracker) Reset() {
	for a := range h.last {
		delete(h.last, a)
	}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
