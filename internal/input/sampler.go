// Package input turns timestamped key presses into per-tick input frames.
//
// Terminals report presses and auto-repeats but no releases, so a control
// counts as held for a short window after each press. The first window
// covers the keyboard's initial repeat delay; later windows only need to
// bridge the gap between repeats.
package input

import (
	"sync"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Default hold windows.
const (
	DefaultFirstHold  = 520 * time.Millisecond
	DefaultRepeatHold = 150 * time.Millisecond
)

// Sampler buffers presses between ticks. It is safe for concurrent use.
type Sampler struct {
	mu       sync.Mutex
	pending  []core.Action
	holdTill map[core.Action]time.Duration
	holdable map[core.Action]bool
	first    time.Duration
	repeat   time.Duration
}

// NewSampler creates a sampler with the default windows. Movement and
// jump are the only holdable actions.
func NewSampler() *Sampler {
	return NewSamplerWithWindows(DefaultFirstHold, DefaultRepeatHold)
}

// NewSamplerWithWindows creates a sampler with explicit hold windows.
func NewSamplerWithWindows(first, repeat time.Duration) *Sampler {
	return &Sampler{
		holdTill: make(map[core.Action]time.Duration),
		holdable: map[core.Action]bool{
			core.ActionUp:    true,
			core.ActionDown:  true,
			core.ActionLeft:  true,
			core.ActionRight: true,
			core.ActionJump:  true,
		},
		first:  first,
		repeat: repeat,
	}
}

// Press records a key press at time at.
func (s *Sampler) Press(a core.Action, at time.Duration) {
	if a == core.ActionNone {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, a)
	if !s.holdable[a] {
		return
	}

	window := s.first
	if till, ok := s.holdTill[a]; ok && till > at {
		window = s.repeat
	}
	if till := at + window; till > s.holdTill[a] {
		s.holdTill[a] = till
	}

	// Opposite directions cancel each other.
	if o := opposite(a); o != core.ActionNone {
		delete(s.holdTill, o)
	}
}

// Release ends a hold early, for terminals that report key releases.
func (s *Sampler) Release(a core.Action) {
	s.mu.Lock()
	delete(s.holdTill, a)
	s.mu.Unlock()
}

// Frame drains buffered presses into a frame for the tick at now.
func (s *Sampler) Frame(now time.Duration) core.InputFrame {
	s.mu.Lock()
	defer s.mu.Unlock()

	frame := core.NewInputFrame()
	for _, a := range s.pending {
		frame.Set(a)
	}
	s.pending = s.pending[:0]

	for a, till := range s.holdTill {
		if till > now {
			frame.Hold(a)
		} else {
			delete(s.holdTill, a)
		}
	}
	return frame
}

// Reset drops buffered presses and holds.
func (s *Sampler) Reset() {
	s.mu.Lock()
	s.pending = s.pending[:0]
	clear(s.holdTill)
	s.mu.Unlock()
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}
