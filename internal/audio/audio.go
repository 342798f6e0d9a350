// Package audio defines the fire-and-forget sound collaborator used by the
// loop driver. Backends must never block the caller.
package audio

import "github.com/vovakirdan/retro-arcade/internal/core"

// Player plays named cues.
type Player interface {
	Play(cue core.Cue)
	Close() error
}

// Nop is the silent player used when audio is muted or unavailable.
type Nop struct{}

// Play implements Player.
func (Nop) Play(core.Cue) {}

// Close implements Player.
func (Nop) Close() error { return nil }
