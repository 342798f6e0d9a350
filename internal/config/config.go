// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       SnakeGrid       `yaml:"grid"`
	Start      SnakeStart      `yaml:"start"`
	Speed      SnakeSpeed      `yaml:"speed"`
	Scoring    SnakeScoring    `yaml:"scoring"`
	Difficulty SnakeDifficulty `yaml:"difficulty"`
}

// SnakeGrid defines the board dimensions.
type SnakeGrid struct {
	Cols     int     `yaml:"cols"`
	Rows     int     `yaml:"rows"`
	CellSize float64 `yaml:"cell_size"` // world units per cell
}

// SnakeStart defines the initial head position.
type SnakeStart struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeSpeed defines the move interval in milliseconds.
type SnakeSpeed struct {
	BaseMs int `yaml:"base_ms"` // interval at level 1
	StepMs int `yaml:"step_ms"` // reduction per level
	MinMs  int `yaml:"min_ms"`  // floor
}

// SnakeScoring defines points and level thresholds.
type SnakeScoring struct {
	FoodPoints     int `yaml:"food_points"`
	PointsPerLevel int `yaml:"points_per_level"`
}

// SnakeDifficulty toggles speed progression.
type SnakeDifficulty struct {
	Progression bool `yaml:"progression"` // false keeps the base interval at every level
}

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	World    PlatformerWorld    `yaml:"world"`
	Player   PlatformerPlayer   `yaml:"player"`
	Gameplay PlatformerGameplay `yaml:"gameplay"`
	Scoring  PlatformerScoring  `yaml:"scoring"`
}

// PlatformerWorld defines viewport, level extent and global physics.
type PlatformerWorld struct {
	ViewWidth  float64 `yaml:"view_width"`
	ViewHeight float64 `yaml:"view_height"`
	LevelWidth float64 `yaml:"level_width"`
	Gravity    float64 `yaml:"gravity"`
	Friction   float64 `yaml:"friction"`
}

// PlatformerPlayer defines the player body and controls.
type PlatformerPlayer struct {
	SpawnX            float64 `yaml:"spawn_x"`
	SpawnY            float64 `yaml:"spawn_y"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	BigHeight         float64 `yaml:"big_height"`
	Accel             float64 `yaml:"accel"`
	MaxSpeed          float64 `yaml:"max_speed"`
	JumpImpulse       float64 `yaml:"jump_impulse"`
	StompBounce       float64 `yaml:"stomp_bounce"`
	InvulnerableTicks int     `yaml:"invulnerable_ticks"`
}

// PlatformerGameplay defines lives and collision tolerances.
type PlatformerGameplay struct {
	Lives          int     `yaml:"lives"`
	StompTolerance float64 `yaml:"stomp_tolerance"`
	GoalMargin     float64 `yaml:"goal_margin"` // distance from the level end that counts as a win
}

// PlatformerScoring defines points per event.
type PlatformerScoring struct {
	Stomp         int `yaml:"stomp"`
	Coin          int `yaml:"coin"`
	PowerUp       int `yaml:"powerup"`
	LevelComplete int `yaml:"level_complete"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
