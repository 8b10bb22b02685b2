package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionJump)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionJump) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should report nothing")
	}
	zero.Set(ActionLeft)
	if !zero.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputStateHeldPersists(t *testing.T) {
	s := NewInputState()
	s.Press(ActionRight)

	for i := 0; i < 3; i++ {
		if !s.Frame().Has(ActionRight) {
			t.Fatalf("frame %d: held right should persist", i)
		}
	}

	s.Release(ActionRight)
	if s.Frame().Has(ActionRight) {
		t.Error("released direction should not appear")
	}
}

func TestInputStateJumpIsEdgeTriggered(t *testing.T) {
	s := NewInputState()

	s.Press(ActionJump)
	s.Press(ActionJump) // autorepeat while held
	if !s.Frame().Has(ActionJump) {
		t.Fatal("first frame should carry the jump")
	}
	if s.Frame().Has(ActionJump) {
		t.Error("jump should not repeat while held")
	}

	s.Release(ActionJump)
	if s.Frame().Has(ActionJump) {
		t.Error("key-up should not fire a jump")
	}

	s.Press(ActionJump)
	if !s.Frame().Has(ActionJump) {
		t.Error("a fresh press after release should fire again")
	}
}

func TestInputStateReset(t *testing.T) {
	s := NewInputState()
	s.Press(ActionLeft)
	s.Press(ActionPause)
	s.Reset()

	f := s.Frame()
	if f.Has(ActionLeft) || f.Has(ActionPause) {
		t.Errorf("Reset should clear everything, got %v", f.Actions)
	}
	if s.Held(ActionLeft) {
		t.Error("Held should be false after Reset")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" || ActionLeft.String() != "Left" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
