package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestHoldTrackerExpires(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)

	if got := h.Expire(t0.Add(100 * time.Millisecond)); len(got) != 0 {
		t.Errorf("released at the window edge: %v", got)
	}
	if !h.Held(core.ActionRight) {
		t.Fatal("right should still be held")
	}

	// Autorepeat keeps the key alive.
	h.Press(core.ActionRight, t0.Add(90*time.Millisecond))
	if got := h.Expire(t0.Add(150 * time.Millisecond)); len(got) != 0 {
		t.Errorf("repeat should extend the hold, released %v", got)
	}

	got := h.Expire(t0.Add(300 * time.Millisecond))
	if len(got) != 1 || got[0] != core.ActionRight {
		t.Errorf("Expire() = %v, expected [Right]", got)
	}
	if h.Held(core.ActionRight) {
		t.Error("right should be released")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(1000, 0)

	if released := h.Press(core.ActionLeft, t0); released != core.ActionNone {
		t.Errorf("first press released %v", released)
	}
	if released := h.Press(core.ActionRight, t0); released != core.ActionLeft {
		t.Errorf("pressing right should release left, got %v", released)
	}
	if h.Held(core.ActionLeft) || !h.Held(core.ActionRight) {
		t.Error("only right should be held")
	}
}

func TestHoldTrackerResetAndDefaults(t *testing.T) {
	h := NewHoldTracker(0)
	if h.window != DefaultHoldWindow {
		t.Errorf("window = %v, expected default", h.window)
	}

	h.Press(core.ActionLeft, time.Now())
	h.Reset()
	if h.Held(core.ActionLeft) {
		t.Error("Reset should release everything")
	}
}
