// Package platformer implements a side-scrolling platformer: run and jump
// across ledges, stomp patrolling enemies and reach the flagpole.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the platformer simulation and its phase controller.
type Game struct {
	player       Player
	level        Level
	scrollOffset float64 // Camera offset into the level
	endGoalScore int
	killCount    int
	phase        Phase
	paused       bool
	tickCount    int

	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	fixed   *config.PlatformerConfig // Set by NewWithConfig, bypasses loading
}

// New creates a new platformer instance that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates an instance that always uses cfg.
func NewWithConfig(cfg config.PlatformerConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset starts a new session: full lives, zero kills, first level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.player = Player{
		Pos:      g.spawnPoint(),
		Size:     core.Extent{W: g.cfg.Player.Width, H: g.cfg.Player.Height},
		Color:    core.ColorPurple,
		Lives:    g.cfg.Player.Lives,
		MaxJumps: g.cfg.Player.MaxJumps,
	}
	g.level = g.newLevel()
	g.scrollOffset = g.cfg.World.ScrollStart
	g.endGoalScore = 0
	g.killCount = 0
	g.phase = PhasePlaying
	g.paused = false
	g.tickCount = 0
}

func (g *Game) loadConfig() config.PlatformerConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// newLevel builds a fresh level with enemy speed taken from the config.
func (g *Game) newLevel() Level {
	lvl := NewLevelOne()
	for i := range lvl.Enemies {
		lvl.Enemies[i].Vel = -g.cfg.Physics.EnemySpeed
	}
	return lvl
}

func (g *Game) spawnPoint() core.Vec2 {
	return core.Vec2{
		X: g.cfg.World.Width * g.cfg.Player.SpawnXFrac,
		Y: g.cfg.Player.SpawnY,
	}
}

// Step advances the game by one tick. Once the session has ended Step is a
// no-op until Reset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	var events []core.Event
	switch g.phase {
	case PhasePlaying:
		g.stepPlaying(in, &events)
	case PhaseWinning:
		g.stepWinning(&events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Score returns the session score: goal height points plus bonuses for
// lives left and enemies stomped.
func (g *Game) Score() int {
	sc := g.cfg.Scoring
	return g.endGoalScore + g.player.Lives*sc.LifeBonus + g.killCount*sc.KillBonus
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Lives:    g.player.Lives,
		GameOver: g.phase.Terminal(),
		Won:      g.phase == PhaseWon,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}

// Summary reports session detail for the run log.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		Kills:     g.killCount,
		GoalScore: g.endGoalScore,
		Ticks:     g.tickCount,
	}
}
