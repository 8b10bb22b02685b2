package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Overlay geometry in world units.
var (
	winBox      = core.NewRect(312, 150, 400, 250)
	gameOverBox = core.NewRect(312, 150, 400, 150)
	pauseBox    = core.NewRect(312, 200, 400, 120)
)

// Render draws the current game state to the screen, scaling the world to
// the screen's size.
func (g *Game) Render(dst *core.Screen) {
	g.Draw(core.NewScaledSurface(dst, g.cfg.World.Width, g.cfg.World.Height))
}

// Draw issues the draw commands for the current phase.
func (g *Game) Draw(s core.Surface) {
	s.Clear()

	switch g.phase {
	case PhaseWinning, PhaseWon:
		g.drawScenery(s)
		g.player.Draw(s)
		g.drawWinOverlay(s)
		return
	}

	g.drawScenery(s)
	for i := range g.level.Enemies {
		g.level.Enemies[i].Draw(s)
	}
	g.player.Draw(s)
	s.DrawText(20, 40, fmt.Sprintf("Lives: %d", g.player.Lives), core.TextStyle{Size: 32})

	if g.phase == PhaseGameOver {
		g.drawGameOverOverlay(s)
		return
	}
	if g.paused {
		s.FillRect(pauseBox, core.ColorLightGray)
		s.StrokeRect(pauseBox, core.ColorGray)
		s.DrawText(412, 270, "PAUSED", core.TextStyle{Color: core.ColorBlack, Size: 42})
	}
}

// drawScenery draws the goal markers and platforms.
func (g *Game) drawScenery(s core.Surface) {
	for i := range g.level.EndGoals {
		g.level.EndGoals[i].Draw(s)
	}
	for i := range g.level.Platforms {
		g.level.Platforms[i].Draw(s)
	}
}

func (g *Game) drawWinOverlay(s core.Surface) {
	s.FillRect(winBox, core.ColorLightGray)
	s.StrokeRect(winBox, core.ColorGray)
	s.DrawText(362, 250, "You Win!", core.TextStyle{Gradient: true, Size: 72})
	s.DrawText(362, 350, fmt.Sprintf("Score: %d", g.Score()), core.TextStyle{Color: core.ColorBlack, Size: 42})
}

func (g *Game) drawGameOverOverlay(s core.Surface) {
	s.FillRect(gameOverBox, core.ColorLightGray)
	s.StrokeRect(gameOverBox, core.ColorGray)
	s.DrawText(322, 250, "Game Over", core.TextStyle{Color: core.ColorGray, Size: 72})
}
