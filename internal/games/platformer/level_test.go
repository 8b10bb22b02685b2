package platformer

import (
	"reflect"
	"testing"
)

func TestLevelFactoryIsFresh(t *testing.T) {
	a := NewLevelOne()
	b := NewLevelOne()

	if !reflect.DeepEqual(a, b) {
		t.Fatal("two builds should have identical geometry")
	}

	a.Enemies[0].Vel = 1
	a.Enemies[0].Pos.X = 0
	a.Platforms[0].Pos.X = 999
	a.EndGoals[0].Pos.Y = 0
	a.Enemies = a.Enemies[:1]

	if b.Enemies[0].Vel != -1 || b.Enemies[0].Pos.X != 465 {
		t.Errorf("enemy state leaked between builds: %+v", b.Enemies[0])
	}
	if b.Platforms[0].Pos.X != -50 || b.EndGoals[0].Pos.Y != 90 {
		t.Error("platform state leaked between builds")
	}
	if len(b.Enemies) != 2 {
		t.Error("enemy list leaked between builds")
	}
}

func TestLevelOneLayout(t *testing.T) {
	l := NewLevelOne()
	if len(l.Platforms) != 7 || len(l.EndGoals) != 2 || len(l.Enemies) != 2 {
		t.Fatalf("layout sizes = %d/%d/%d", len(l.Platforms), len(l.EndGoals), len(l.Enemies))
	}
	if l.GoalTriggerTop() != 90 {
		t.Errorf("GoalTriggerTop() = %v, expected 90", l.GoalTriggerTop())
	}
	for i := range l.Enemies {
		if _, ok := l.PatrolBounds(&l.Enemies[i]); !ok {
			t.Errorf("enemy %d has no patrol platform", i)
		}
	}
}

func TestLevelShift(t *testing.T) {
	l := NewLevelOne()
	l.Shift(-4)

	if l.Platforms[0].Pos.X != -54 || l.EndGoals[0].Pos.X != 2516 || l.Enemies[0].Pos.X != 461 {
		t.Errorf("Shift(-4) moved entities inconsistently: %v %v %v",
			l.Platforms[0].Pos.X, l.EndGoals[0].Pos.X, l.Enemies[0].Pos.X)
	}

	// Patrol bounds follow the shifted platform.
	bounds, _ := l.PatrolBounds(&l.Enemies[0])
	if bounds.X != -54 {
		t.Errorf("patrol bounds x = %v, expected -54", bounds.X)
	}
}

func TestPatrolBoundsOutOfRange(t *testing.T) {
	l := NewLevelOne()
	e := l.Enemies[0]
	e.PlatformIndex = 42
	if _, ok := l.PatrolBounds(&e); ok {
		t.Error("out of range index should not resolve")
	}
}
