package platformer

import "math"

// Snapshot contains the dynamic game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick         uint64
	Phase        int
	PlayerX      float64
	PlayerY      float64
	VelX         float64
	VelY         float64
	Lives        int
	Jumps        int
	ScrollOffset float64
	KillCount    int
	EndGoalScore int

	// Each enemy is 3 floats: X, Y, Vel
	EnemyCount int
	EnemyData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]float64, 0, len(g.level.Enemies)*3)
	for _, e := range g.level.Enemies {
		enemyData = append(enemyData, e.Pos.X, e.Pos.Y, e.Vel)
	}

	return Snapshot{
		Tick:         uint64(g.tickCount), //#nosec G115 -- tick count is never negative
		Phase:        int(g.phase),
		PlayerX:      g.player.Pos.X,
		PlayerY:      g.player.Pos.Y,
		VelX:         g.player.Vel.X,
		VelY:         g.player.Vel.Y,
		Lives:        g.player.Lives,
		Jumps:        g.player.Jumps,
		ScrollOffset: g.scrollOffset,
		KillCount:    g.killCount,
		EndGoalScore: g.endGoalScore,
		EnemyCount:   len(g.level.Enemies),
		EnemyData:    enemyData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.VelX)
	h = h*31 + math.Float64bits(snap.VelY)
	h = h*31 + uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Jumps)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.KillCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EndGoalScore) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.ScrollOffset)
	h = h*31 + uint64(snap.EnemyCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
