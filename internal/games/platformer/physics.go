package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// applyJump fires a jump on the edge-triggered jump action.
func (g *Game) applyJump(in core.InputFrame) {
	if in.Has(core.ActionJump) {
		g.player.TryJump(g.cfg.Physics.JumpImpulse)
	}
}

// updateEnemies moves every enemy along its patrol platform.
// Runs before the player moves, so collisions see already-moved enemies.
func (g *Game) updateEnemies() {
	speed := math.Abs(g.cfg.Physics.EnemySpeed)
	margin := g.cfg.Physics.PatrolMargin
	for i := range g.level.Enemies {
		e := &g.level.Enemies[i]
		bounds, ok := g.level.PatrolBounds(e)
		if !ok {
			e.Pos.X += e.Vel
			continue
		}
		e.Patrol(bounds, speed, margin)
	}
}

// applyMovement turns held directions into either player velocity or a
// world scroll. The two are exclusive within a tick: past the screen
// thresholds the player stops and the world moves instead.
// Right takes precedence when both directions are held.
func (g *Game) applyMovement(in core.InputFrame) {
	phys := g.cfg.Physics
	world := g.cfg.World
	right := in.Has(core.ActionRight)
	left := in.Has(core.ActionLeft)

	switch {
	case right && g.player.Pos.X < world.Width*world.RightBoundFrac:
		g.player.Vel.X = phys.MoveSpeed
	case left && g.player.Pos.X > world.LeftBound:
		g.player.Vel.X = -phys.MoveSpeed
	default:
		g.player.Vel.X = 0
		switch {
		case right && g.scrollOffset < world.ScrollMax:
			g.scroll(phys.ScrollSpeed)
		case left && g.scrollOffset > 0:
			g.scroll(-phys.ScrollSpeed)
		}
	}
}

// scroll advances the camera by delta, moving the whole world the
// opposite way in the same tick.
func (g *Game) scroll(delta float64) {
	g.scrollOffset += delta
	g.level.Shift(-delta)
}
