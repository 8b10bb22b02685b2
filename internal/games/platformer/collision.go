package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// landsOn is the swept top-contact test: the feet are at or above top now
// and at or below it after the next move, with horizontal spans overlapping.
// A single discrete step, so a fast enough fall can pass a thin target.
func landsOn(p *Player, top float64, target core.Rect) bool {
	return p.Bottom() <= top &&
		p.NextBottom() >= top &&
		p.Rect().OverlapsX(target)
}

// sideContact reports an enemy walking into the player: feet level with
// the enemy's feet and spans overlapping once the enemy takes its next step.
func sideContact(p *Player, e *Enemy, epsilon float64) bool {
	if math.Abs(p.Bottom()-e.Bottom()) > epsilon {
		return false
	}
	return p.Pos.X+p.Size.W >= e.Pos.X+e.Vel &&
		p.Pos.X <= e.Pos.X+e.Size.W+e.Vel
}

// enemiesCollide reports two enemies on the same row whose next-step spans
// overlap.
func enemiesCollide(a, b *Enemy) bool {
	if a.Pos.Y != b.Pos.Y {
		return false
	}
	return a.Pos.X+a.Size.W+a.Vel >= b.Pos.X+b.Vel &&
		a.Pos.X+a.Vel <= b.Pos.X+b.Size.W+b.Vel
}

// GoalScore converts the height at which the player touched the goal into
// points: the higher above the trigger's window floor, the more points,
// bucketed into fixed steps.
func GoalScore(bottom, triggerTop float64, sc config.Scoring) int {
	if sc.GoalWindow == 0 {
		return 0
	}
	frac := 1 - (bottom-triggerTop)/sc.GoalWindow
	return sc.GoalStep * int(math.Ceil(sc.GoalBuckets*frac))
}

// resolvePlatforms lands the player on every platform it reaches this tick.
func (g *Game) resolvePlatforms() bool {
	landed := false
	p := &g.player
	for i := range g.level.Platforms {
		plat := &g.level.Platforms[i]
		if !landsOn(p, plat.Pos.Y, plat.Rect()) {
			continue
		}
		p.Vel.Y = -g.cfg.Physics.Bounce * p.Vel.Y
		p.Pos.Y = plat.Pos.Y - p.Size.H
		p.Jumps = 0
		landed = true
	}
	return landed
}

// fellOff reports whether the player's next position leaves the bottom of
// the world.
func (g *Game) fellOff() bool {
	return g.player.NextBottom() >= g.cfg.World.Height
}

// touchGoal checks the end goal markers. On contact it stops the fall,
// scores the touch height and centers the player on the marker.
func (g *Game) touchGoal() bool {
	p := &g.player
	for i := range g.level.EndGoals {
		goal := &g.level.EndGoals[i]
		if !p.Rect().Touches(goal.Rect()) {
			continue
		}
		p.Vel.Y = 0
		g.endGoalScore = GoalScore(p.Bottom(), g.level.GoalTriggerTop(), g.cfg.Scoring)
		p.Pos.X = goal.Pos.X + (goal.Size.W-p.Size.W)/2
		return true
	}
	return false
}

// resolveEnemies handles stomps and side contacts. Stomped enemies are
// removed from the level. Returns true if an enemy killed the player.
func (g *Game) resolveEnemies(events *[]core.Event) bool {
	p := &g.player
	eps := g.cfg.Collision.SideContactEpsilon
	hit := false

	survivors := g.level.Enemies[:0]
	for i := range g.level.Enemies {
		e := g.level.Enemies[i]
		if landsOn(p, e.Pos.Y, e.Rect()) {
			p.Vel.Y = -p.Vel.Y
			p.Pos.Y = e.Pos.Y - p.Size.H
			g.killCount++
			*events = append(*events, core.Event{Type: core.EventStomp, Value: g.killCount})
			continue
		}
		if sideContact(p, &e, eps) {
			hit = true
		}
		survivors = append(survivors, e)
	}
	g.level.Enemies = survivors
	return hit
}

// separateEnemies turns around both enemies of every colliding pair.
func (g *Game) separateEnemies() {
	enemies := g.level.Enemies
	for i := range enemies {
		for j := i + 1; j < len(enemies); j++ {
			if enemiesCollide(&enemies[i], &enemies[j]) {
				enemies[i].Reverse()
				enemies[j].Reverse()
			}
		}
	}
}
