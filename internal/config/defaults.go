package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: Physics{
			Gravity:      0.5,
			Bounce:       0.2,
			JumpImpulse:  -15,
			MoveSpeed:    4,
			ScrollSpeed:  4,
			EnemySpeed:   1,
			PatrolMargin: 2,
		},
		Player: Player{
			Width:      30,
			Height:     60,
			Lives:      3,
			MaxJumps:   2,
			SpawnXFrac: 0.1,
			SpawnY:     450,
		},
		World: World{
			Width:          1024,
			Height:         576,
			ScrollStart:    100,
			ScrollMax:      2200,
			RightBoundFrac: 0.4,
			LeftBound:      52,
			WinGroundY:     530,
			WinWalkX:       3000,
			WinStep:        2,
		},
		Scoring: Scoring{
			GoalWindow:  440,
			GoalBuckets: 50,
			GoalStep:    20,
			LifeBonus:   300,
			KillBonus:   100,
		},
		Collision: Collision{
			SideContactEpsilon: 0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}
