package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Cols:     30,
			Rows:     20,
			CellSize: 20,
		},
		Start: SnakeStart{
			X: 10,
			Y: 10,
		},
		Speed: SnakeSpeed{
			BaseMs: 150,
			StepMs: 15,
			MinMs:  50,
		},
		Scoring: SnakeScoring{
			FoodPoints:     10,
			PointsPerLevel: 50,
		},
		Difficulty: SnakeDifficulty{
			Progression: true,
		},
	}
}

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: PlatformerWorld{
			ViewWidth:  800,
			ViewHeight: 600,
			LevelWidth: 3200,
			Gravity:    0.8,
			Friction:   0.8,
		},
		Player: PlatformerPlayer{
			SpawnX:            100,
			SpawnY:            400,
			Width:             32,
			Height:            32,
			BigHeight:         48,
			Accel:             0.5,
			MaxSpeed:          5,
			JumpImpulse:       -15,
			StompBounce:       -8,
			InvulnerableTicks: 120,
		},
		Gameplay: PlatformerGameplay{
			Lives:          3,
			StompTolerance: 10,
			GoalMargin:     100,
		},
		Scoring: PlatformerScoring{
			Stomp:         200,
			Coin:          100,
			PowerUp:       500,
			LevelComplete: 1000,
		},
	}
}
