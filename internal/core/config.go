package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation; screen size only matters to
// the platform, since games simulate in their own world units.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the coarse lifecycle state of a game session.
type Phase string

const (
	PhaseReady   Phase = "ready"   // waiting for the first input
	PhaseRunning Phase = "running" // simulation advancing
	PhasePaused  Phase = "paused"
	PhaseOver    Phase = "over"
)

// GameState is the read-only display state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int
	Level  int // 0 when the game has no levels
	Lives  int // -1 when the game has no lives
	Coins  int // -1 when the game has no coins
	Phase  Phase
	Status string // short human-readable status line
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseOver
}

// Paused reports whether the session is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // sounds requested during this tick, in order

	// Ended is set on the tick a session finishes (death or level
	// completion). FinalScore is the score to offer to the score book.
	Ended      bool
	FinalScore int
}
