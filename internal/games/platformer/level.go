package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Level is one snapshot of the world: the collidable platforms, the end
// goal markers and the live enemies. A Level is replaced wholesale on
// respawn; nothing in it is shared with any other Level.
type Level struct {
	Platforms []Platform
	EndGoals  []Platform // [0] is the flag-top trigger, [1] the flagpole
	Enemies   []Enemy
}

func platform(x, y, w, h float64, c core.Color) Platform {
	return Platform{Pos: core.Vec2{X: x, Y: y}, Size: core.Extent{W: w, H: h}, Color: c}
}

func enemy(x, y, w, h float64, platformIndex int) Enemy {
	return Enemy{
		Pos:           core.Vec2{X: x, Y: y},
		Size:          core.Extent{W: w, H: h},
		Vel:           -1,
		PlatformIndex: platformIndex,
	}
}

// NewLevelOne builds a freshly allocated copy of the first level.
func NewLevelOne() Level {
	return Level{
		Platforms: []Platform{
			platform(-50, 530, 550, 100, core.ColorBrown),   // floor 1
			platform(1000, 530, 5000, 100, core.ColorBrown), // floor 2
			platform(-100, 0, 50, 1200, core.ColorBrown),    // left wall
			platform(230, 350, 200, 15, core.ColorBlue),
			platform(600, 150, 150, 15, core.ColorGreen),
			platform(1800, 300, 300, 15, core.ColorAquamarine),
			platform(2200, 170, 200, 15, core.ColorTurquoise),
		},
		EndGoals: []Platform{
			platform(2520, 90, 10, 10, core.ColorGold),
			platform(2520, 100, 10, 1000, core.ColorGray), // flagpole
		},
		Enemies: []Enemy{
			enemy(465, 500, 30, 30, 0),
			enemy(405, 500, 30, 30, 0),
		},
	}
}

// Shift translates every platform, goal and enemy horizontally by dx.
func (l *Level) Shift(dx float64) {
	for i := range l.Platforms {
		l.Platforms[i].Pos.X += dx
	}
	for i := range l.EndGoals {
		l.EndGoals[i].Pos.X += dx
	}
	for i := range l.Enemies {
		l.Enemies[i].Pos.X += dx
	}
}

// PatrolBounds resolves an enemy's patrol platform in this level.
func (l *Level) PatrolBounds(e *Enemy) (core.Rect, bool) {
	if e.PlatformIndex < 0 || e.PlatformIndex >= len(l.Platforms) {
		return core.Rect{}, false
	}
	return l.Platforms[e.PlatformIndex].Rect(), true
}

// GoalTriggerTop returns the y of the flag-top trigger, the reference
// height for the goal score.
func (l *Level) GoalTriggerTop() float64 {
	if len(l.EndGoals) == 0 {
		return 0
	}
	return l.EndGoals[0].Pos.Y
}
