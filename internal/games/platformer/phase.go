package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Phase is the game-phase controller's current state. The host calls Step
// every frame; Step reads the phase and runs the matching loop.
type Phase int

const (
	PhasePlaying  Phase = iota // Physics, input and collisions every tick
	PhaseWinning               // Scripted walk-off after touching the goal
	PhaseWon                   // Win sequence finished, session over
	PhaseGameOver              // No lives left, session over
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWinning:
		return "winning"
	case PhaseWon:
		return "won"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks should be run.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseGameOver
}

// stepPlaying runs one tick of the playing loop.
func (g *Game) stepPlaying(in core.InputFrame, events *[]core.Event) {
	g.applyJump(in)
	g.updateEnemies()
	g.player.Integrate(g.cfg.Physics.Gravity)
	g.applyMovement(in)

	g.resolvePlatforms()

	if g.fellOff() {
		g.die(events)
		return
	}

	goalBefore := g.endGoalScore
	reachedGoal := g.touchGoal()

	killed := g.resolveEnemies(events)
	g.separateEnemies()

	// A death in the same tick outranks touching the goal.
	if killed {
		g.endGoalScore = goalBefore
		g.die(events)
		return
	}
	if reachedGoal {
		g.phase = PhaseWinning
		*events = append(*events, core.Event{Type: core.EventGoal, Value: g.endGoalScore})
	}
}

// stepWinning runs one tick of the scripted win sequence: drop to the
// ground, then walk right off the screen.
func (g *Game) stepWinning(events *[]core.Event) {
	w := g.cfg.World
	p := &g.player
	switch {
	case p.Bottom() <= w.WinGroundY:
		p.Pos.Y += w.WinStep
	case p.Pos.X < w.WinWalkX:
		p.Pos.X += w.WinStep
	default:
		g.phase = PhaseWon
		*events = append(*events, core.Event{Type: core.EventWon, Value: g.Score()})
	}
}

// die takes a life and either respawns or ends the session.
func (g *Game) die(events *[]core.Event) {
	g.player.Lives--
	*events = append(*events, core.Event{Type: core.EventDeath, Value: g.player.Lives})

	if g.player.Lives > 0 {
		g.respawn()
		*events = append(*events, core.Event{Type: core.EventRespawn, Value: g.player.Lives})
		return
	}

	g.phase = PhaseGameOver
	*events = append(*events, core.Event{Type: core.EventGameOver, Value: g.Score()})
}

// respawn puts the player back at the spawn point and rebuilds the level.
// Kills and goal score are kept: they only reset with the session.
func (g *Game) respawn() {
	g.player.Pos = g.spawnPoint()
	g.player.Vel = core.Vec2{}
	g.player.Jumps = 0
	g.scrollOffset = g.cfg.World.ScrollStart
	g.level = g.newLevel()
	g.phase = PhasePlaying
}
