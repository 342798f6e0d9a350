package core

// Cue names a sound effect requested by a game. Playback is fire-and-forget.
type Cue string

const (
	CueJump     Cue = "jump"
	CueCoin     Cue = "coin"
	CuePowerUp  Cue = "powerup"
	CueStomp    Cue = "stomp"
	CueGameOver Cue = "gameover"
	CueEat      Cue = "eat"
	CueLevelUp  Cue = "levelup"
)

// Cues lists every known cue.
func Cues() []Cue {
	return []Cue{CueJump, CueCoin, CuePowerUp, CueStomp, CueGameOver, CueEat, CueLevelUp}
}

// ScoreBook persists a single best score per game.
type ScoreBook interface {
	// Best returns the stored best score, 0 if none or unreadable.
	Best(game string) int
	// Record stores score if it beats the current best and reports whether it did.
	Record(game string, score int) (bool, error)
}
