package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Player is the single playable character of a session.
type Player struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Size     core.Extent
	Color    core.Color
	Lives    int
	Jumps    int // Jumps used since last landing
	MaxJumps int
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.RectAt(p.Pos, p.Size)
}

// Bottom returns the y-coordinate of the player's feet.
func (p *Player) Bottom() float64 {
	return p.Pos.Y + p.Size.H
}

// NextBottom returns where the feet will be after the next integration.
func (p *Player) NextBottom() float64 {
	return p.Bottom() + p.Vel.Y
}

// TryJump applies a jump impulse if the player has jumps left.
func (p *Player) TryJump(impulse float64) bool {
	if p.Jumps >= p.MaxJumps {
		return false
	}
	p.Vel.Y = impulse
	p.Jumps++
	return true
}

// Integrate moves the player by its velocity and then accelerates it
// downward, so Vel.Y is always the displacement of the coming tick.
func (p *Player) Integrate(gravity float64) {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel.Y += gravity
}

// Draw issues the player's draw command.
func (p *Player) Draw(s core.Surface) {
	s.FillRect(p.Rect(), p.Color)
}

// Platform is a static rectangle: floors, walls, ledges and goal markers.
// Only its horizontal position changes, when the world scrolls.
type Platform struct {
	Pos   core.Vec2
	Size  core.Extent
	Color core.Color
}

// Rect returns the platform's bounding box.
func (p *Platform) Rect() core.Rect {
	return core.RectAt(p.Pos, p.Size)
}

// Draw issues the platform's draw command.
func (p *Platform) Draw(s core.Surface) {
	s.FillRect(p.Rect(), p.Color)
}

// Enemy paces horizontally across the platform it was created on.
type Enemy struct {
	Pos  core.Vec2
	Size core.Extent
	Vel  float64 // Horizontal speed, sign is direction

	// PlatformIndex points into the Platforms of the Level owning this
	// enemy, so patrol bounds always come from the current level.
	PlatformIndex int
}

// Rect returns the enemy's bounding box.
func (e *Enemy) Rect() core.Rect {
	return core.RectAt(e.Pos, e.Size)
}

// Bottom returns the y-coordinate of the enemy's feet.
func (e *Enemy) Bottom() float64 {
	return e.Pos.Y + e.Size.H
}

// Reverse flips the enemy's walking direction.
func (e *Enemy) Reverse() {
	e.Vel = -e.Vel
}

// Patrol advances the enemy one tick and turns it around once it comes
// within margin of either edge of its patrol platform.
func (e *Enemy) Patrol(bounds core.Rect, speed, margin float64) {
	e.Pos.X += e.Vel
	switch {
	case e.Pos.X+margin <= bounds.X:
		e.Vel = speed
	case e.Pos.X+e.Size.W-margin >= bounds.Right():
		e.Vel = -speed
	}
}

// Draw issues the enemy's draw command.
func (e *Enemy) Draw(s core.Surface) {
	s.FillRect(e.Rect(), core.ColorRed)
}
