// Package beepout plays audio cues through the system speaker using beep.
// It is kept apart from package audio so that games and tests never link
// the native audio backend.
package beepout

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// DefaultVolume matches the quiet retro mix level.
const DefaultVolume = 0.3

// Player mixes cues onto a single speaker stream.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// New initializes the speaker. The error is returned when no audio device
// is available; callers fall back to audio.Nop.
func New(volume float64) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}

	p := &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues the cue and returns immediately.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	s := Synth(cue, sampleRate, p.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}
