// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

// PlatformerConfig contains all tunable constants of the platformer.
type PlatformerConfig struct {
	Physics   Physics   `yaml:"physics" toml:"physics"`
	Player    Player    `yaml:"player" toml:"player"`
	World     World     `yaml:"world" toml:"world"`
	Scoring   Scoring   `yaml:"scoring" toml:"scoring"`
	Collision Collision `yaml:"collision" toml:"collision"`
}

// Physics defines per-tick motion constants.
type Physics struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
	Bounce       float64 `yaml:"bounce" toml:"bounce"`             // Fraction of fall speed kept after landing
	JumpImpulse  float64 `yaml:"jump_impulse" toml:"jump_impulse"` // Negative = up
	MoveSpeed    float64 `yaml:"move_speed" toml:"move_speed"`
	ScrollSpeed  float64 `yaml:"scroll_speed" toml:"scroll_speed"`
	EnemySpeed   float64 `yaml:"enemy_speed" toml:"enemy_speed"`
	PatrolMargin float64 `yaml:"patrol_margin" toml:"patrol_margin"` // Distance from a platform edge that turns an enemy
}

// Player defines the player's body, lives and spawn point.
type Player struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Lives      int     `yaml:"lives" toml:"lives"`
	MaxJumps   int     `yaml:"max_jumps" toml:"max_jumps"`
	SpawnXFrac float64 `yaml:"spawn_x_frac" toml:"spawn_x_frac"` // Fraction of world width
	SpawnY     float64 `yaml:"spawn_y" toml:"spawn_y"`
}

// World defines the visible area, scrolling window and win sequence.
type World struct {
	Width          float64 `yaml:"width" toml:"width"`
	Height         float64 `yaml:"height" toml:"height"`
	ScrollStart    float64 `yaml:"scroll_start" toml:"scroll_start"`
	ScrollMax      float64 `yaml:"scroll_max" toml:"scroll_max"`
	RightBoundFrac float64 `yaml:"right_bound_frac" toml:"right_bound_frac"` // Past this fraction of width the world scrolls
	LeftBound      float64 `yaml:"left_bound" toml:"left_bound"`
	WinGroundY     float64 `yaml:"win_ground_y" toml:"win_ground_y"`
	WinWalkX       float64 `yaml:"win_walk_x" toml:"win_walk_x"`
	WinStep        float64 `yaml:"win_step" toml:"win_step"`
}

// Scoring defines the goal-height score and end-of-run bonuses.
type Scoring struct {
	GoalWindow  float64 `yaml:"goal_window" toml:"goal_window"`
	GoalBuckets float64 `yaml:"goal_buckets" toml:"goal_buckets"`
	GoalStep    int     `yaml:"goal_step" toml:"goal_step"`
	LifeBonus   int     `yaml:"life_bonus" toml:"life_bonus"`
	KillBonus   int     `yaml:"kill_bonus" toml:"kill_bonus"`
}

// Collision defines tolerances of the collision checks.
type Collision struct {
	// SideContactEpsilon widens the bottom-edge equality of the enemy side
	// contact check. Zero keeps exact equality.
	SideContactEpsilon float64 `yaml:"side_contact_epsilon" toml:"side_contact_epsilon"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// LivesForPreset returns the starting lives for a difficulty preset.
func LivesForPreset(preset DifficultyPreset, fallback int) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 1
	default:
		return fallback
	}
}
